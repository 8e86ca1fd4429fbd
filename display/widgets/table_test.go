package widgets

import (
	"strings"
	"testing"
)

func testTable(width int) Table {
	return Table{
		Columns: []Column{
			{Title: "PID", Width: 7, Align: AlignRight},
			{Title: "NAME"},
			{Title: "CPU%", Width: 6, Align: AlignRight},
		},
		Width: width,
	}
}

func TestTableRendersHeaderAndRows(t *testing.T) {
	tab := testTable(40)
	out := tab.Render([][]string{
		{"1", "init", "0.1"},
		{"42", "worker", "55.0"},
	}, -1)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "PID") || !strings.Contains(lines[0], "NAME") {
		t.Errorf("header missing titles: %q", lines[0])
	}
	if !strings.Contains(lines[2], "worker") {
		t.Errorf("row content missing: %q", lines[2])
	}
}

func TestTableRightAlignment(t *testing.T) {
	tab := testTable(40)
	out := tab.Render([][]string{{"7", "x", "1.0"}}, -1)

	row := strings.Split(out, "\n")[1]
	// PID column is 7 wide, right-aligned: six spaces then "7".
	if !strings.HasPrefix(row, "      7") {
		t.Errorf("expected right-aligned PID, got %q", row)
	}
}

func TestTableShortRowPadded(t *testing.T) {
	tab := testTable(40)
	out := tab.Render([][]string{{"1"}}, -1)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Must not panic and must still emit all three columns' widths.
	if len([]rune(lines[1])) < 15 {
		t.Errorf("short row not padded: %q", lines[1])
	}
}

func TestTableFlexibleColumnAbsorbsWidth(t *testing.T) {
	tab := testTable(50)
	out := tab.Render([][]string{{"1", "a", "0.0"}}, -1)

	header := strings.Split(out, "\n")[0]
	// 7 + 6 fixed, 2-cell gaps between 3 columns = 4; flexible NAME column
	// gets the rest, so the header spans the full width.
	if got := len([]rune(header)); got != 50 {
		t.Errorf("expected header width 50, got %d", got)
	}
}

func TestTableEmptyColumns(t *testing.T) {
	var tab Table
	if out := tab.Render([][]string{{"x"}}, 0); out != "" {
		t.Errorf("expected empty output without columns, got %q", out)
	}
}

func TestTableSelectionIndexOutOfRangeIsSafe(t *testing.T) {
	tab := testTable(40)
	// Selection index beyond the rows must not panic.
	out := tab.Render([][]string{{"1", "init", "0.1"}}, 10)
	if out == "" {
		t.Error("expected rendered table")
	}
}
