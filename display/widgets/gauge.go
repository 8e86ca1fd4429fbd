package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gauge renders a horizontal usage bar with threshold-based coloring.
type Gauge struct {
	// Width is the bar width in cells, excluding label and percent text.
	Width int

	// Label is optional text shown left of the bar.
	Label string

	// LabelWidth pads the label to a fixed width so stacked gauges align.
	LabelWidth int

	// ShowPercent appends "NN.N%" right of the bar.
	ShowPercent bool

	// WarnAt and DangerAt are the percents where the fill color shifts.
	// Zero values fall back to 70 and 90.
	WarnAt   float64
	DangerAt float64
}

// Gauge fill colors by threshold.
var (
	gaugeOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	gaugeWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	gaugeDanger = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	gaugeEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
)

// Render draws the gauge for a 0-100 percent value, clamped.
func (g Gauge) Render(percent float64) string {
	percent = math.Max(0, math.Min(100, percent))

	width := g.Width
	if width <= 0 {
		width = 20
	}
	warn := g.WarnAt
	if warn <= 0 {
		warn = 70
	}
	danger := g.DangerAt
	if danger <= 0 {
		danger = 90
	}

	filled := int(math.Round(percent / 100 * float64(width)))
	if filled > width {
		filled = width
	}

	style := gaugeOK
	switch {
	case percent >= danger:
		style = gaugeDanger
	case percent >= warn:
		style = gaugeWarn
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		gaugeEmpty.Render(strings.Repeat("░", width-filled))

	var b strings.Builder
	if g.Label != "" {
		label := g.Label
		if g.LabelWidth > 0 {
			label = fmt.Sprintf("%-*s", g.LabelWidth, label)
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString(bar)
	if g.ShowPercent {
		b.WriteString(fmt.Sprintf(" %5.1f%%", percent))
	}
	return b.String()
}
