package codepanel

import tea "github.com/charmbracelet/bubbletea"

// fakeWidget is a Widget whose text tests set directly.
type fakeWidget struct {
	text    string
	sets    []string
	focused bool
	w, h    int
	msgs    []tea.Msg
}

func newFake(text string) *fakeWidget { return &fakeWidget{text: text} }

func (f *fakeWidget) Value() string { return f.text }

func (f *fakeWidget) SetValue(text string) {
	f.text = text
	f.sets = append(f.sets, text)
}

func (f *fakeWidget) Update(msg tea.Msg) tea.Cmd {
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeWidget) View() string { return f.text }

func (f *fakeWidget) SetSize(width, height int) { f.w, f.h = width, height }

func (f *fakeWidget) Focus() tea.Cmd { f.focused = true; return nil }

func (f *fakeWidget) Blur() { f.focused = false }

// changes records OnChange calls.
type changes struct{ got []string }

func (c *changes) record(text string) { c.got = append(c.got, text) }

type tick struct{}
