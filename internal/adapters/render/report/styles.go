package report

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	key      lipgloss.Style
	value    lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	closed   lipgloss.Style
	aborted  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	table    table.Styles
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		closed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		aborted:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		table: table.Styles{
			Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Padding(0, 1),
			Cell:     lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle(),
		},
	}
}
