package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/systop/display/widgets"
	"gitlab.com/tinyland/lab/systop/internal/format"
	"gitlab.com/tinyland/lab/systop/internal/history"
)

// renderOverview draws host info, CPU and memory gauges with history
// sparklines, swap, and load averages.
func (m Model) renderOverview(width int) string {
	var b strings.Builder

	if m.snapshot == nil {
		return styleContent.Render(styleFooter.Render("collecting first snapshot..."))
	}
	snap := m.snapshot

	host := snap.Host
	b.WriteString(styleTitle.Render("Host"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Hostname", 10)),
		styleValue.Render(host.Hostname)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Platform", 10)),
		styleValue.Render(host.Platform)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Kernel", 10)),
		styleValue.Render(host.KernelVersion)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Uptime", 10)),
		styleValue.Render(format.Uptime(host.UptimeSeconds))))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		styleLabel.Render(format.PadRight("CPUs", 10)),
		styleValue.Render(fmt.Sprintf("%d", host.CPUCount))))

	gaugeWidth := width / 3
	if gaugeWidth < 10 {
		gaugeWidth = 10
	}
	sparkWidth := m.history.Capacity()
	if sparkWidth > width-4 {
		sparkWidth = width - 4
	}

	cpuGauge := widgets.Gauge{Width: gaugeWidth, Label: "CPU", LabelWidth: 6, ShowPercent: true}
	memGauge := widgets.Gauge{Width: gaugeWidth, Label: "Memory", LabelWidth: 6, ShowPercent: true}
	swapGauge := widgets.Gauge{Width: gaugeWidth, Label: "Swap", LabelWidth: 6, ShowPercent: true}

	cpuSpark := widgets.Sparkline{Width: sparkWidth, Max: 100, Style: styleSparkCPU}
	memSpark := widgets.Sparkline{Width: sparkWidth, Max: 100, Style: styleSparkMem}

	b.WriteString(styleTitle.Render("CPU"))
	b.WriteString("\n")
	b.WriteString(cpuGauge.Render(snap.CPUPercent))
	b.WriteString("\n")
	b.WriteString(cpuSpark.Render(m.history.Snapshot(history.SeriesCPU)))
	b.WriteString("\n\n")

	b.WriteString(styleTitle.Render("Memory"))
	b.WriteString("\n")
	b.WriteString(memGauge.Render(snap.MemoryPercent()))
	b.WriteString(fmt.Sprintf("  %s / %s\n",
		format.Bytes(snap.MemoryUsed), format.Bytes(snap.MemoryTotal)))
	b.WriteString(memSpark.Render(m.history.Snapshot(history.SeriesMemory)))
	b.WriteString("\n")
	if snap.SwapTotal > 0 {
		b.WriteString(swapGauge.Render(snap.SwapPercent()))
		b.WriteString(fmt.Sprintf("  %s / %s\n",
			format.Bytes(snap.SwapUsed), format.Bytes(snap.SwapTotal)))
	}
	b.WriteString("\n")

	b.WriteString(styleTitle.Render("Load"))
	b.WriteString("\n")
	b.WriteString(styleValue.Render(fmt.Sprintf("%.2f  %.2f  %.2f  (1m / 5m / 15m)",
		snap.Load1, snap.Load5, snap.Load15)))

	return styleContent.Render(b.String())
}
