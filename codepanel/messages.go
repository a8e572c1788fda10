package codepanel

import "sync/atomic"

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// MountedMsg reports that the widget built by Init is ready.
type MountedMsg struct {
	ID     int
	Widget Widget
}

// FormattedMsg reports the outcome of a Format triggered from Update.
type FormattedMsg struct {
	ID      int
	Outcome FormatOutcome
}

// FormatFailedMsg carries a formatter error out of Update. The panel does
// not display it; hosts decide how to surface it.
type FormatFailedMsg struct {
	ID  int
	Err error
}
