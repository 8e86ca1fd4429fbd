package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/systop/display/widgets"
	"gitlab.com/tinyland/lab/systop/internal/format"
)

// renderDisks draws one usage gauge per mounted filesystem.
func (m Model) renderDisks(width int) string {
	if m.snapshot == nil {
		return styleContent.Render(styleFooter.Render("collecting first snapshot..."))
	}
	disks := m.snapshot.Disks

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Disks (%d)", len(disks))))
	b.WriteString("\n\n")

	if len(disks) == 0 {
		b.WriteString(styleFooter.Render("no disk data"))
		return styleContent.Render(b.String())
	}

	labelWidth := 0
	for _, d := range disks {
		if n := len([]rune(d.MountPath)); n > labelWidth {
			labelWidth = n
		}
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	gaugeWidth := width/2 - labelWidth
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}

	for _, d := range disks {
		g := widgets.Gauge{
			Width:       gaugeWidth,
			Label:       format.TruncateWithEllipsis(d.MountPath, labelWidth),
			LabelWidth:  labelWidth,
			ShowPercent: true,
		}
		b.WriteString(g.Render(d.UsedPercent))
		b.WriteString(fmt.Sprintf("  %s / %s",
			format.Bytes(d.UsedBytes), format.Bytes(d.TotalBytes)))
		if d.Fstype != "" {
			b.WriteString(styleFooter.Render("  " + d.Fstype))
		}
		b.WriteString("\n")
	}

	return styleContent.Render(b.String())
}
