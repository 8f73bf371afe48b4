package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles shared by the commands.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C6AED"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))
)
