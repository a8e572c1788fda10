package codepanel

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/panes/internal/textstat"
	"github.com/iw2rmb/panes/pointer"
)

func (m Model) View() string {
	body := m.cfg.Style.Placeholder.Render("loading editor…")
	if w, ok := m.handle.Widget(); ok {
		body = w.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderToolbar(), body, m.renderStatus())
}

func (m Model) renderButton() string {
	return m.cfg.Style.Button.Render(m.cfg.ButtonLabel)
}

func (m Model) renderToolbar() string {
	btn := m.renderButton()
	if m.bounds.Width <= 0 {
		return m.cfg.Style.Toolbar.Render(btn)
	}
	return m.cfg.Style.Toolbar.Render(lipgloss.PlaceHorizontal(m.bounds.Width, lipgloss.Right, btn))
}

func (m Model) renderStatus() string {
	st := textstat.Of(m.last)
	s := fmt.Sprintf("lines: %d  chars: %d", st.Lines, st.Graphemes)
	if m.bounds.Width > 0 {
		s = textstat.Fit(s, m.bounds.Width)
	}
	return m.cfg.Style.Status.Render(s)
}

// buttonRect is the screen area of the Format button: the right end of the
// toolbar row. A panel that was never placed has no button area.
func (m Model) buttonRect() pointer.Rect {
	if m.bounds.Empty() {
		return pointer.Rect{}
	}
	w := lipgloss.Width(m.renderButton())
	x := m.bounds.X
	if m.bounds.Width > w {
		x += m.bounds.Width - w
	}
	return pointer.Rect{X: x, Y: m.bounds.Y, Width: w, Height: 1}
}
