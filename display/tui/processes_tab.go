package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/systop/display/widgets"
	"gitlab.com/tinyland/lab/systop/internal/format"
)

// processTableOverhead is the lines the processes tab spends on the sort
// line, padding, and table header.
const processTableOverhead = 5

// renderProcesses draws the sortable process table. The visible window
// scrolls so the selected row is always on screen.
func (m Model) renderProcesses(width, height int) string {
	rows := m.procs.Rows()

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Processes (%d)", len(rows))))
	b.WriteString(styleFooter.Render(fmt.Sprintf("   sort: %s", m.procs.SortKey())))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(styleFooter.Render("no process data yet"))
		return styleContent.Render(b.String())
	}

	visible := height - processTableOverhead
	if visible < 3 {
		visible = 3
	}

	selected := m.procs.SelectedIndex()
	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	cells := make([][]string, 0, end-start)
	for _, r := range rows[start:end] {
		cells = append(cells, []string{
			fmt.Sprintf("%d", r.PID),
			r.Name,
			fmt.Sprintf("%.1f", r.CPUPercent),
			format.Bytes(r.MemoryBytes),
			r.Status,
		})
	}

	tableWidth := width - 4
	if tableWidth < 40 {
		tableWidth = 40
	}
	table := widgets.Table{
		Columns: []widgets.Column{
			{Title: "PID", Width: 7, Align: widgets.AlignRight},
			{Title: "NAME"},
			{Title: "CPU%", Width: 6, Align: widgets.AlignRight},
			{Title: "MEMORY", Width: 10, Align: widgets.AlignRight},
			{Title: "STATUS", Width: 8},
		},
		Width:         tableWidth,
		HeaderStyle:   styleTableHeader,
		SelectedStyle: styleSelectedRow,
	}
	b.WriteString(table.Render(cells, selected-start))

	if start > 0 || end < len(rows) {
		b.WriteString("\n")
		b.WriteString(styleFooter.Render(
			fmt.Sprintf("showing %d-%d of %d", start+1, end, len(rows))))
	}

	return styleContent.Render(b.String())
}
