package codepanel

import tea "github.com/charmbracelet/bubbletea"

// Widget is the mounted code editing surface. Implementations are reference
// types: every copy of a Model sharing a Handle drives the same widget.
type Widget interface {
	Value() string
	// SetValue replaces the whole content.
	SetValue(text string)

	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	Blur()
}

// WidgetFactory builds a widget holding defaultValue.
type WidgetFactory func(defaultValue string, opts WidgetOptions) Widget

// WidgetOptions configure the widget's rendering. The panel always passes
// DefaultWidgetOptions unless the host overrides them in Config.
type WidgetOptions struct {
	WordWrap             bool
	Minimap              bool
	ShowUnused           bool
	Folding              bool
	LineNumbersMinChars  int
	FontSize             int
	ScrollBeyondLastLine bool
	AutomaticLayout      bool
	TabSize              int
}

func DefaultWidgetOptions() WidgetOptions {
	return WidgetOptions{
		WordWrap:             true,
		Minimap:              false,
		ShowUnused:           false,
		Folding:              false,
		LineNumbersMinChars:  3,
		FontSize:             18,
		ScrollBeyondLastLine: false,
		AutomaticLayout:      true,
		TabSize:              2,
	}
}
