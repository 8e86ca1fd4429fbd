// Package widgets provides the text renderers composed into the dashboard
// tabs: sparkline history charts, bar gauges, and column tables. Widgets
// are pure functions over already-collected data; they never touch the
// metric sources.
package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks are the eight block characters used for sparkline levels,
// lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a history series as a one-line unicode chart.
type Sparkline struct {
	// Width is the chart width in cells. Series shorter than Width are
	// left-padded so the newest sample is always the rightmost cell.
	Width int

	// Max is the top of the value scale. Zero means auto-scale to the
	// series maximum. Percent charts pass 100 so a calm series does not
	// get amplified into noise.
	Max float64

	// Style colors the chart cells.
	Style lipgloss.Style
}

// Render draws the series, oldest-first. An empty series renders as blank
// padding so chart rows keep their alignment.
func (s Sparkline) Render(data []float64) string {
	width := s.Width
	if width <= 0 {
		width = len(data)
	}
	if width == 0 {
		return ""
	}

	// Keep only the most recent samples that fit.
	if len(data) > width {
		data = data[len(data)-width:]
	}

	maxVal := s.Max
	if maxVal <= 0 {
		for _, v := range data {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	var b strings.Builder
	for i := 0; i < width-len(data); i++ {
		b.WriteByte(' ')
	}
	for _, v := range data {
		if maxVal <= 0 {
			b.WriteRune(sparkBlocks[0])
			continue
		}
		norm := math.Max(0, math.Min(1, v/maxVal))
		idx := int(norm * float64(len(sparkBlocks)-1))
		b.WriteRune(sparkBlocks[idx])
	}

	return s.Style.Render(b.String())
}
