package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. Zero styles render text unchanged.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// EdgeFill styles the blank cells left where the window edge cuts a
	// wide cluster.
	EdgeFill lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		EdgeFill:      lipgloss.NewStyle().Background(lipgloss.Color("236")),
	}
}
