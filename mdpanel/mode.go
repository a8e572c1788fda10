package mdpanel

// Mode selects the surface the panel shows. Exactly one surface is rendered
// at any time.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}
