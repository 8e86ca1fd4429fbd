package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/systop/internal/format"
)

// Alignment controls text alignment within a table column.
type Alignment int

const (
	// AlignLeft aligns text to the left (default).
	AlignLeft Alignment = iota
	// AlignRight aligns text to the right.
	AlignRight
)

// Column defines a single table column.
type Column struct {
	// Title is the header text.
	Title string
	// Width is the fixed character width. If 0, the column absorbs the
	// remaining table width (at most one column should do this).
	Width int
	// Align controls cell alignment.
	Align Alignment
}

// Table renders fixed-layout rows with an optional highlighted row, used
// for the process list and the disks tab.
type Table struct {
	Columns []Column

	// Width is the total table width; the flexible column absorbs what the
	// fixed columns leave over.
	Width int

	HeaderStyle   lipgloss.Style
	RowStyle      lipgloss.Style
	SelectedStyle lipgloss.Style
}

// Render draws the header plus rows. selected is the row index to
// highlight, or -1 for none. Rows longer than the column count are
// truncated; short rows are padded.
func (t Table) Render(rows [][]string, selected int) string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := t.columnWidths()

	var lines []string

	headerCells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headerCells[i] = alignCell(col.Title, widths[i], col.Align)
	}
	lines = append(lines, t.HeaderStyle.Render(strings.Join(headerCells, "  ")))

	for rowIdx, row := range rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			cells[i] = alignCell(text, widths[i], col.Align)
		}
		line := strings.Join(cells, "  ")

		style := t.RowStyle
		if rowIdx == selected {
			style = t.SelectedStyle
		}
		lines = append(lines, style.Render(line))
	}

	return strings.Join(lines, "\n")
}

// columnWidths resolves fixed widths and gives the flexible column the
// remaining space.
func (t Table) columnWidths() []int {
	widths := make([]int, len(t.Columns))
	fixed := 0
	flexIdx := -1

	for i, col := range t.Columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
		} else if flexIdx < 0 {
			flexIdx = i
		} else {
			widths[i] = 8
			fixed += 8
		}
	}

	if flexIdx >= 0 {
		gaps := 2 * (len(t.Columns) - 1)
		remaining := t.Width - fixed - gaps
		if remaining < 4 {
			remaining = 4
		}
		widths[flexIdx] = remaining
	}

	return widths
}

func alignCell(s string, width int, align Alignment) string {
	if align == AlignRight {
		return format.PadLeft(s, width)
	}
	return format.PadRight(s, width)
}
