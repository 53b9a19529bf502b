package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/graphtop/internal/screen"
)

// Dashboard color palette - Electric Synthwave. Colors degrade to the
// selected output mode.
const (
	// Semantic colors for metrics - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
)

// Thresholds for metric severity levels
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Cell styles for the dashboard
var (
	titleStyle   = screen.Style{Fg: ColorAccent, Bold: true}
	borderStyle  = screen.Style{Fg: ColorAccentDim}
	labelStyle   = screen.Style{Fg: ColorTextSecondary}
	helpStyle    = screen.Style{Fg: ColorTextMuted}
	readoutStyle = screen.Style{Fg: ColorTextPrimary, Bold: true}
)

// MetricColor returns the appropriate color for a percentage-based metric.
// Uses threshold-based coloring: green < 70%, yellow 70-90%, red >= 90%.
func MetricColor(percent float64) lipgloss.Color {
	return MetricColorWithThresholds(percent, int(WarningThreshold), int(CriticalThreshold))
}

// MetricColorWithThresholds returns the appropriate color for a percentage-based metric
// using the provided warning and critical threshold values.
func MetricColorWithThresholds(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorCritical
	case percent >= float64(warning):
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// barStyle colors a bar column by its sample.
func barStyle(percent float64) screen.Style {
	return screen.Style{Fg: MetricColor(percent)}
}
