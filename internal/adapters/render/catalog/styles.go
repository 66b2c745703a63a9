package catalog

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	product  lipgloss.Style
	selected lipgloss.Style
	price    lipgloss.Style
	comment  lipgloss.Style
	draft    lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	cartItem lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		product:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		price:    lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		draft:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		cartItem: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
