package cmd

import "github.com/charmbracelet/lipgloss"

const (
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorTitle   = lipgloss.Color("#7C3AED")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
)
