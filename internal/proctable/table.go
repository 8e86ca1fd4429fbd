// Package proctable holds the process table state: the current row set, the
// sort order, and the selection. Row data is replaced wholesale on each
// snapshot; sort and selection survive the replacement.
package proctable

import "sort"

// Row is one process's record in the table.
type Row struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
	Status      string
}

// SortKey selects the active sort comparator.
type SortKey int

const (
	// SortName orders rows by name, case-sensitive lexical ascending.
	SortName SortKey = iota
	// SortCPU orders rows by CPU usage, highest first.
	SortCPU
	// SortMemory orders rows by memory usage, highest first.
	SortMemory
	// SortPID orders rows by PID, ascending.
	SortPID
)

// Next returns the successor in the sort cycle
// Name -> CPU -> Memory -> PID -> Name.
func (k SortKey) Next() SortKey {
	switch k {
	case SortName:
		return SortCPU
	case SortCPU:
		return SortMemory
	case SortMemory:
		return SortPID
	default:
		return SortName
	}
}

// String returns the display label for the sort key.
func (k SortKey) String() string {
	switch k {
	case SortName:
		return "name"
	case SortCPU:
		return "cpu"
	case SortMemory:
		return "memory"
	case SortPID:
		return "pid"
	default:
		return "unknown"
	}
}

// noSelection marks an empty table.
const noSelection = -1

// Table owns the sorted row set and the selection index. It is not safe for
// concurrent use; the owning model serializes access.
type Table struct {
	rows     []Row
	sortKey  SortKey
	selected int
}

// New creates an empty Table sorted by CPU usage.
func New() *Table {
	return &Table{
		sortKey:  SortCPU,
		selected: noSelection,
	}
}

// SetRows replaces the entire row set and re-sorts it. If the previously
// selected PID still exists in the new set, the selection follows it to its
// new position; otherwise the selection falls back to the first row, or to
// no selection when the table is empty.
func (t *Table) SetRows(rows []Row) {
	var selectedPID int32
	hadSelection := false
	if r, ok := t.Selected(); ok {
		selectedPID = r.PID
		hadSelection = true
	}

	t.rows = make([]Row, len(rows))
	copy(t.rows, rows)
	t.sortRows()

	if len(t.rows) == 0 {
		t.selected = noSelection
		return
	}

	t.selected = 0
	if hadSelection {
		if idx := t.indexOfPID(selectedPID); idx >= 0 {
			t.selected = idx
		}
	}
}

// SetSort sets the sort key and re-sorts the rows, keeping the selected PID.
func (t *Table) SetSort(key SortKey) {
	if r, ok := t.Selected(); ok {
		t.sortKey = key
		t.sortRows()
		if idx := t.indexOfPID(r.PID); idx >= 0 {
			t.selected = idx
		}
		return
	}
	t.sortKey = key
	t.sortRows()
}

// CycleSort advances to the next key in the sort cycle.
func (t *Table) CycleSort() {
	t.SetSort(t.sortKey.Next())
}

// SortKey returns the active sort key.
func (t *Table) SortKey() SortKey {
	return t.sortKey
}

// MoveSelection moves the selection by delta rows, clamped to the table
// bounds. Moving past either end sticks at the boundary; there is no
// wraparound.
func (t *Table) MoveSelection(delta int) {
	if len(t.rows) == 0 {
		t.selected = noSelection
		return
	}
	idx := t.selected + delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.rows)-1 {
		idx = len(t.rows) - 1
	}
	t.selected = idx
}

// Selected returns the currently selected row, if any.
func (t *Table) Selected() (Row, bool) {
	if t.selected < 0 || t.selected >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[t.selected], true
}

// SelectedIndex returns the selection index, or -1 for no selection.
func (t *Table) SelectedIndex() int {
	if t.selected >= len(t.rows) {
		return noSelection
	}
	return t.selected
}

// Rows returns the sorted rows. The slice is shared with the table and must
// be treated as read-only by callers.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the row count.
func (t *Table) Len() int {
	return len(t.rows)
}

// Contains reports whether a row with the given PID exists.
func (t *Table) Contains(pid int32) bool {
	return t.indexOfPID(pid) >= 0
}

func (t *Table) indexOfPID(pid int32) int {
	for i, r := range t.rows {
		if r.PID == pid {
			return i
		}
	}
	return -1
}

// sortRows orders rows by the active key. CPU and Memory sort descending,
// Name and PID ascending. Ties break by ascending PID so the order is
// deterministic across snapshots.
func (t *Table) sortRows() {
	rows := t.rows
	less := func(i, j int) bool { return rows[i].PID < rows[j].PID }

	switch t.sortKey {
	case SortName:
		less = func(i, j int) bool {
			if rows[i].Name != rows[j].Name {
				return rows[i].Name < rows[j].Name
			}
			return rows[i].PID < rows[j].PID
		}
	case SortCPU:
		less = func(i, j int) bool {
			if rows[i].CPUPercent != rows[j].CPUPercent {
				return rows[i].CPUPercent > rows[j].CPUPercent
			}
			return rows[i].PID < rows[j].PID
		}
	case SortMemory:
		less = func(i, j int) bool {
			if rows[i].MemoryBytes != rows[j].MemoryBytes {
				return rows[i].MemoryBytes > rows[j].MemoryBytes
			}
			return rows[i].PID < rows[j].PID
		}
	}

	sort.SliceStable(rows, less)
}
