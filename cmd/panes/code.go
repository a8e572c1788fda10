package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/codepanel"
	"github.com/iw2rmb/panes/internal/log"
	"github.com/iw2rmb/panes/internal/textstat"
	"github.com/iw2rmb/panes/pointer"
)

type codeState struct {
	changes int
	status  string
	// popup holds a format failure shown over the panel until the next key.
	popup string
}

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("196")).
	Padding(0, 1)

type codeModel struct {
	panel codepanel.Model
	state *codeState
	width int
}

func newCodeModel(text string) codeModel {
	state := &codeState{}
	panel := codepanel.New(codepanel.Config{
		DefaultValue: text,
		OnChange:     func(string) { state.changes++ },
		Style:        codepanel.DefaultStyle(),
		Logger:       log.Get(),
	})
	return codeModel{panel: panel, state: state}
}

func (m codeModel) Init() tea.Cmd { return m.panel.Init() }

func (m codeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.panel = m.panel.SetBounds(pointer.Rect{Width: msg.Width, Height: max(msg.Height-1, 0)})
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
		if m.state.popup != "" {
			m.state.popup = ""
			return m, nil
		}
	case codepanel.FormatFailedMsg:
		m.state.status = "format failed"
		m.state.popup = textstat.FirstLine(msg.Err.Error())
		log.Get().Info("format failed", zap.Error(msg.Err))
		return m, nil
	case codepanel.FormattedMsg:
		m.state.status = "format " + msg.Outcome.String()
		return m, nil
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m codeModel) View() string {
	status := fmt.Sprintf("changes: %d  %s  (ctrl+q quits)", m.state.changes, m.state.status)
	if m.width > 0 {
		status = textstat.Fit(status, m.width)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, m.panel.View(), status)
	if m.state.popup == "" {
		return view
	}

	text := m.state.popup
	if m.width > 8 {
		text = textstat.Fit(text, m.width-8)
	}
	box := popupStyle.Render("format failed\n" + text + "\n\npress any key")
	return overlay.Composite(box, view, overlay.Center, overlay.Center, 0, 0)
}

func newCodeCmd(_ *rootOptions) *cobra.Command {
	var printFinal bool

	cmd := &cobra.Command{
		Use:   "code [file]",
		Short: "Edit code with a Format button",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				var err error
				if text, err = readInput(cmd, args); err != nil {
					return err
				}
			}

			final, err := tea.NewProgram(newCodeModel(text), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			if err != nil {
				return err
			}
			if printFinal {
				if m, ok := final.(codeModel); ok {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), m.panel.Value())
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&printFinal, "print", false, "print the final text on exit")
	return cmd
}
