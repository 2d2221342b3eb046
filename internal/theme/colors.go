package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Delta direction colors
const (
	ColorImproved  Color = "2" // Green
	ColorRegressed Color = "1" // Red
)

// UI semantic colors
const (
	ColorMuted Color = "241" // Gray - secondary text
)

var (
	improvedStyle  = lipgloss.NewStyle().Foreground(ColorImproved)
	mutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	regressedStyle = lipgloss.NewStyle().Foreground(ColorRegressed)
)
