package textbox

import "github.com/charmbracelet/lipgloss"

// Style controls the text box rendering.
type Style struct {
	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
	Disabled    lipgloss.Style
	Counter     lipgloss.Style
}

func DefaultStyle() Style {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: faint,
		Disabled:    faint.Faint(true),
		Counter:     faint,
	}
}
