package pointer

import tea "github.com/charmbracelet/bubbletea"

// ClickedOutsideMsg is produced for a left press outside the area watched by
// the subscription with the same ID. Session is the value the holder passed
// to ClickOutside; a message may still be queued after the holder moved on to
// a new session.
type ClickedOutsideMsg struct {
	ID      int
	Session uint64
}

// ClickOutside returns a Listener reporting left presses outside area.
// Holders whose area moves subscribe again with the new area.
func ClickOutside(id int, session uint64, area Rect) Listener {
	return func(msg tea.MouseMsg) tea.Msg {
		if !IsLeftPress(msg) || area.Contains(msg.X, msg.Y) {
			return nil
		}
		return ClickedOutsideMsg{ID: id, Session: session}
	}
}

// IsLeftPress reports whether msg is a primary button press.
func IsLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
