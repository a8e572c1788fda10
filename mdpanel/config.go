package mdpanel

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/markdown"
	"github.com/iw2rmb/panes/pointer"
)

// DefaultText is the document a panel starts with when Config.Text is empty.
const DefaultText = "# Hello world!!!"

type Config struct {
	// Text is the initial document. Empty means DefaultText unless
	// KeepEmpty is set.
	Text      string
	KeepEmpty bool

	// Bus delivers presses outside the panel while editing. Without a bus
	// the panel checks the presses the host forwards to it.
	Bus *pointer.Bus

	// Defaults to markdown.New().
	Renderer *markdown.Renderer

	// OnChange, when set, receives the text after every edit.
	OnChange func(text string)

	// Zero value means DefaultKeyMap.
	KeyMap KeyMap
	Style  Style

	Logger *zap.Logger
}

type KeyMap struct {
	Edit key.Binding
	Done key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Done: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "preview")),
	}
}

type Style struct {
	Preview lipgloss.Style
	Editor  lipgloss.Style
	// Divider separates the editor from the live preview while editing.
	Divider lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Preview: lipgloss.NewStyle(),
		Editor:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
