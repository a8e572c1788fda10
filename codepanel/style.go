package codepanel

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Button      lipgloss.Style
	Toolbar     lipgloss.Style
	Status      lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1),
		Toolbar:     lipgloss.NewStyle(),
		Status:      muted,
		Placeholder: muted.Italic(true),
	}
}
