package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/systop/display/widgets"
	"gitlab.com/tinyland/lab/systop/internal/format"
	"gitlab.com/tinyland/lab/systop/internal/history"
)

// renderNetwork draws current receive/transmit rates with their history
// charts, plus the cumulative counters.
func (m Model) renderNetwork(width int) string {
	if m.snapshot == nil {
		return styleContent.Render(styleFooter.Render("collecting first snapshot..."))
	}
	snap := m.snapshot

	sparkWidth := m.history.Capacity()
	if sparkWidth > width-4 {
		sparkWidth = width - 4
	}
	rxSpark := widgets.Sparkline{Width: sparkWidth, Style: styleSparkRx}
	txSpark := widgets.Sparkline{Width: sparkWidth, Style: styleSparkTx}

	var b strings.Builder

	b.WriteString(styleTitle.Render("Download"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Rate", 8)),
		styleValue.Render(format.Rate(m.history.Latest(history.SeriesNetRx)))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Total", 8)),
		styleValue.Render(format.Bytes(snap.NetworkRxBytes))))
	b.WriteString(rxSpark.Render(m.history.Snapshot(history.SeriesNetRx)))
	b.WriteString("\n\n")

	b.WriteString(styleTitle.Render("Upload"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Rate", 8)),
		styleValue.Render(format.Rate(m.history.Latest(history.SeriesNetTx)))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		styleLabel.Render(format.PadRight("Total", 8)),
		styleValue.Render(format.Bytes(snap.NetworkTxBytes))))
	b.WriteString(txSpark.Render(m.history.Snapshot(history.SeriesNetTx)))

	if m.history.Len(history.SeriesNetRx) == 0 {
		b.WriteString("\n\n")
		b.WriteString(styleFooter.Render("rates appear after the second sample"))
	}

	return styleContent.Render(b.String())
}
