package codepanel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the panel's own bindings. Everything else goes to the
// widget.
type KeyMap struct {
	Format key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		// shift+alt+f; terminals report the shifted rune.
		Format: key.NewBinding(key.WithKeys("alt+F"), key.WithHelp("shift+alt+f", "format")),
	}
}
