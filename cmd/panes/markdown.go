package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/panes/internal/log"
	"github.com/iw2rmb/panes/markdown"
	"github.com/iw2rmb/panes/mdpanel"
	"github.com/iw2rmb/panes/pointer"
)

// markdownModel hosts one panel on a screen with a margin around it, so
// there is room to click outside.
type markdownModel struct {
	bus   *pointer.Bus
	panel mdpanel.Model
}

const margin = 2

// newMarkdownModel opens text. fromFile keeps an empty file empty instead of
// showing the default document.
func newMarkdownModel(text string, fromFile bool, r *markdown.Renderer) markdownModel {
	bus := pointer.NewBus(log.Get())
	return markdownModel{
		bus: bus,
		panel: mdpanel.New(mdpanel.Config{
			Text:      text,
			KeepEmpty: fromFile,
			Bus:       bus,
			Renderer:  r,
			Style:     mdpanel.DefaultStyle(),
			Logger:    log.Get(),
		}),
	}
}

func (m markdownModel) Init() tea.Cmd { return m.panel.Init() }

func (m markdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.panel = m.panel.SetBounds(pointer.Rect{
			X:      margin,
			Y:      margin,
			Width:  max(msg.Width-2*margin, 0),
			Height: max(msg.Height-2*margin, 0),
		})
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			m.panel.Close()
			return m, tea.Quit
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.bus.Dispatch(msg))
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m markdownModel) View() string {
	pad := strings.Repeat(" ", margin)
	// The panel starts on row `margin`, matching the bounds set above.
	lines := []string{"", pad + "click the preview to edit, click outside to preview, ctrl+q quits"}
	for _, line := range strings.Split(m.panel.View(), "\n") {
		lines = append(lines, pad+line)
	}
	return strings.Join(lines, "\n")
}

func newMarkdownCmd(root *rootOptions) *cobra.Command {
	var printFinal bool

	cmd := &cobra.Command{
		Use:   "markdown [file]",
		Short: "Edit markdown with a sanitized preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				var err error
				if text, err = readInput(cmd, args); err != nil {
					return err
				}
			}

			r, err := markdown.New(
				markdown.WithStyle(root.cfg.Markdown.Style),
				markdown.WithWordWrap(root.cfg.Markdown.WordWrap),
				markdown.WithLogger(log.Get()),
			)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(newMarkdownModel(text, len(args) > 0, r), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			if m, ok := final.(markdownModel); ok {
				m.panel.Close()
				if err == nil && printFinal {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), m.panel.Value())
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&printFinal, "print", false, "print the final text on exit")
	return cmd
}
