package codepanel

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// TextArea is the default Widget, backed by bubbles/textarea.
//
// The textarea always soft-wraps and scrolls no further than the last line.
// Minimap, unused-code fading, folding and font size have no terminal
// counterpart and are ignored.
type TextArea struct {
	ta   textarea.Model
	opts WidgetOptions

	// Lines of the last SetValue the textarea did not keep.
	lost int
}

var _ Widget = (*TextArea)(nil)

// NewTextArea is a WidgetFactory.
func NewTextArea(defaultValue string, opts WidgetOptions) Widget {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = opts.LineNumbersMinChars > 0

	w := &TextArea{ta: ta, opts: opts}
	w.SetValue(defaultValue)
	return w
}

func (w *TextArea) Value() string { return w.ta.Value() }

// SetValue expands tabs to TabSize columns before handing the text to the
// textarea, which would otherwise use its own tab width.
func (w *TextArea) SetValue(text string) {
	text = expandTabs(text, w.opts.TabSize)
	w.ta.SetValue(text)
	w.lost = lostLines(text, w.ta.Value())
}

// LostLines reports how many lines of the last SetValue were cut off by the
// textarea's line limit.
func (w *TextArea) LostLines() int { return w.lost }

func (w *TextArea) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyTab {
		if w.ta.Focused() && w.opts.TabSize > 0 {
			w.ta.InsertString(strings.Repeat(" ", w.opts.TabSize))
		}
		return nil
	}

	var cmd tea.Cmd
	w.ta, cmd = w.ta.Update(msg)
	return cmd
}

func (w *TextArea) View() string { return w.ta.View() }

func (w *TextArea) SetSize(width, height int) {
	w.ta.SetWidth(width)
	w.ta.SetHeight(height)
}

func (w *TextArea) Focus() tea.Cmd { return w.ta.Focus() }

func (w *TextArea) Blur() { w.ta.Blur() }

func expandTabs(s string, size int) string {
	if size <= 0 || !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := size - col%size
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}

func lostLines(want, got string) int {
	return max(strings.Count(want, "\n")-strings.Count(got, "\n"), 0)
}
