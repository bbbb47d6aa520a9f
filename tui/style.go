package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the surface browser's rendering.
type Style struct {
	Header     lipgloss.Style
	Decoration lipgloss.Style
	Text       lipgloss.Style
	CursorLine lipgloss.Style
	StatusBar  lipgloss.Style
	StatusErr  lipgloss.Style
	Dirty      lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Decoration: lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		Text:       lipgloss.NewStyle(),
		CursorLine: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		StatusBar:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		StatusErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
		Dirty:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}
