package codepanel

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/format"
)

// Config configures the panel Model.
type Config struct {
	// Initial text handed to the widget on mount.
	DefaultValue string

	// OnChange receives the widget text after every effective change.
	// Changes to an empty text are not reported.
	OnChange func(text string)

	// Defaults to format.Default.
	Formatter format.Formatter

	// Defaults to NewTextArea.
	NewWidget WidgetFactory

	// Zero value means DefaultWidgetOptions.
	Options WidgetOptions

	// Zero value means DefaultKeyMap.
	KeyMap KeyMap
	Style  Style

	ButtonLabel string

	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Formatter == nil {
		c.Formatter = format.Default
	}
	if c.NewWidget == nil {
		c.NewWidget = NewTextArea
	}
	if c.Options == (WidgetOptions{}) {
		c.Options = DefaultWidgetOptions()
	}
	if len(c.KeyMap.Format.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.ButtonLabel == "" {
		c.ButtonLabel = "Format"
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
