package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	hint    lipgloss.Style
	alert   lipgloss.Style
	busy    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		hint:    lipgloss.NewStyle().Faint(true).MarginTop(1),
		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2),
		busy: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
