// Package styles holds the colour palette and lipgloss styles used for
// terminal output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colours pick the light or dark variant based on the terminal
// background.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D73737", Dark: "#FF5555"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#E67E22", Dark: "#FFB86C"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#27AE60", Dark: "#50FA7B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#8BE9FD"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#6272A4"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#BDC3C7", Dark: "#44475A"}
)

var (
	Error   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)

	Header = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)

	TableHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TableCell   = lipgloss.NewStyle().Padding(0, 1)
	TableTitle  = lipgloss.NewStyle().Bold(true)
	TableBorder = lipgloss.NewStyle().Foreground(ColorBorder)
)
