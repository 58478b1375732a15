package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF64"))
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3232"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
