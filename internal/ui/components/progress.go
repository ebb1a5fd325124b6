package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/verba-app/verba/internal/ui/theme"
)

// ProgressBar is a horizontal accuracy/progress bar with an optional
// label and percentage readout.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar. Width is the total rendered
// width including label and percentage.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// View renders the bar. Percent is clamped to [0, 1].
func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	label := ""
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffixWidth := 0
	if p.ShowPercent {
		suffixWidth = 6
	}
	barWidth := max(p.Width-lipgloss.Width(label)-suffixWidth, 4)
	filled := int(float64(barWidth) * pct)

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	suffix := ""
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100)))
	}
	return label + bar + suffix
}
