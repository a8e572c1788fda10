package codepanel

// HandleState is the lifecycle state of a Handle.
type HandleState int

const (
	Unmounted HandleState = iota
	Mounted
)

func (s HandleState) String() string {
	switch s {
	case Mounted:
		return "mounted"
	default:
		return "unmounted"
	}
}

// Handle refers to the mounted widget, if any. The zero value is Unmounted.
type Handle struct {
	state  HandleState
	widget Widget
}

func mounted(w Widget) Handle {
	if w == nil {
		return Handle{}
	}
	return Handle{state: Mounted, widget: w}
}

func (h Handle) State() HandleState { return h.state }

// Widget returns the mounted widget. ok is false while Unmounted.
func (h Handle) Widget() (w Widget, ok bool) {
	if h.state != Mounted {
		return nil, false
	}
	return h.widget, true
}
