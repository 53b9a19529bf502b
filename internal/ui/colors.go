package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes so CLI output (init, version,
// errors) follows the user's terminal theme. The dashboard has its own
// palette in the monitor package.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// ColorMuted is for secondary text.
const ColorMuted lipgloss.Color = "8" // Gray (bright black)
