package app

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
