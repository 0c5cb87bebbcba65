// Package styles provides shared lipgloss styles for tally's console
// output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title styles section headings such as the menu header.
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// Command styles command names in menu listings.
	Command = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// Muted styles hints and secondary text.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Result styles computed values.
	Result = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	// Error styles user-facing failure messages.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
