package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/systop/collectors/system"
	"gitlab.com/tinyland/lab/systop/config"
	"gitlab.com/tinyland/lab/systop/internal/history"
)

// fakeTerminator records termination attempts.
type fakeTerminator struct {
	pids []int32
	err  error
}

func (f *fakeTerminator) Terminate(pid int32) error {
	f.pids = append(f.pids, pid)
	return f.err
}

// fakeRefresher counts out-of-cycle collections.
type fakeRefresher struct {
	calls int
	snap  *system.Snapshot
	err   error
}

func (f *fakeRefresher) RunOnce(ctx context.Context, name string) (any, error) {
	f.calls++
	return f.snap, f.err
}

func testSnapshot(at time.Time, rx, tx uint64, procs ...system.ProcessInfo) *system.Snapshot {
	return &system.Snapshot{
		Timestamp:      at,
		CPUPercent:     25.0,
		MemoryUsed:     4 << 30,
		MemoryTotal:    16 << 30,
		NetworkRxBytes: rx,
		NetworkTxBytes: tx,
		Processes:      procs,
		Host:           system.HostInfo{Hostname: "host0"},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(config.Default(), nil, &fakeTerminator{}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestTabCycleForward(t *testing.T) {
	m := newTestModel(t)

	want := []tab{tabProcesses, tabNetwork, tabDisks, tabOverview}
	for _, w := range want {
		m, _ = update(t, m, keyRune('l'))
		if m.activeTab != w {
			t.Fatalf("expected tab %v, got %v", w, m.activeTab)
		}
	}
}

func TestTabCycleBackward(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyRune('h'))
	if m.activeTab != tabDisks {
		t.Errorf("expected wrap to disks, got %v", m.activeTab)
	}
}

func TestDirectTabKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyRune('3'))
	if m.activeTab != tabNetwork {
		t.Errorf("expected network tab, got %v", m.activeTab)
	}
	m, _ = update(t, m, keyRune('1'))
	if m.activeTab != tabOverview {
		t.Errorf("expected overview tab, got %v", m.activeTab)
	}
}

func TestApplySnapshotPushesHistoryAndRows(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m, _ = update(t, m, SnapshotMsg{
		Snapshot: testSnapshot(now, 1000, 2000,
			system.ProcessInfo{PID: 1, Name: "init", CPUPercent: 0.1}),
		Timestamp: now,
	})

	if m.history.Len(history.SeriesCPU) != 1 {
		t.Errorf("expected 1 CPU sample, got %d", m.history.Len(history.SeriesCPU))
	}
	if m.history.Latest(history.SeriesCPU) != 25.0 {
		t.Errorf("expected CPU sample 25.0, got %v", m.history.Latest(history.SeriesCPU))
	}
	if m.procs.Len() != 1 {
		t.Errorf("expected 1 process row, got %d", m.procs.Len())
	}
	if m.lastUpdated != now {
		t.Errorf("lastUpdated not set")
	}
	// First snapshot only seeds the rate baseline.
	if m.history.Len(history.SeriesNetRx) != 0 {
		t.Errorf("expected no rate sample from first snapshot")
	}
}

func TestNetworkRateDerivation(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Now()

	m, _ = update(t, m, SnapshotMsg{Snapshot: testSnapshot(t0, 1000, 0)})
	m, _ = update(t, m, SnapshotMsg{Snapshot: testSnapshot(t0.Add(time.Second), 1500, 0)})
	m, _ = update(t, m, SnapshotMsg{Snapshot: testSnapshot(t0.Add(2*time.Second), 1200, 0)})

	rates := m.history.Snapshot(history.SeriesNetRx)
	if len(rates) != 2 {
		t.Fatalf("expected 2 rate samples, got %d", len(rates))
	}
	if rates[0] != 500 {
		t.Errorf("expected 500 B/s, got %v", rates[0])
	}
	if rates[1] != 0 {
		t.Errorf("counter decrease must yield 0, got %v", rates[1])
	}
}

func TestFailedSnapshotRetainsState(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m, _ = update(t, m, SnapshotMsg{
		Snapshot: testSnapshot(now, 0, 0, system.ProcessInfo{PID: 1, Name: "init"}),
	})
	m, _ = update(t, m, SnapshotMsg{Err: errors.New("proc walk failed")})

	if m.procs.Len() != 1 {
		t.Errorf("previous rows must be retained on a failed cycle")
	}
	if m.snapshot == nil {
		t.Errorf("previous snapshot must be retained")
	}
	if m.status == "" || !m.statusIsErr {
		t.Errorf("expected transient error status, got %q", m.status)
	}
}

func TestSelectionKeysOnlyOnProcessesTab(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, SnapshotMsg{Snapshot: testSnapshot(time.Now(), 0, 0,
		system.ProcessInfo{PID: 1, Name: "a", CPUPercent: 9},
		system.ProcessInfo{PID: 2, Name: "b", CPUPercent: 1},
	)})

	// Overview tab: j must not move the selection.
	m, _ = update(t, m, keyRune('j'))
	if m.procs.SelectedIndex() != 0 {
		t.Errorf("selection moved outside processes tab")
	}

	m, _ = update(t, m, keyRune('2'))
	m, _ = update(t, m, keyRune('j'))
	if m.procs.SelectedIndex() != 1 {
		t.Errorf("expected selection at 1, got %d", m.procs.SelectedIndex())
	}
	m, _ = update(t, m, keyRune('k'))
	if m.procs.SelectedIndex() != 0 {
		t.Errorf("expected selection at 0, got %d", m.procs.SelectedIndex())
	}
}

func TestSortKeyCycles(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyRune('2'))

	before := m.procs.SortKey()
	m, _ = update(t, m, keyRune('s'))
	if m.procs.SortKey() != before.Next() {
		t.Errorf("expected sort %v, got %v", before.Next(), m.procs.SortKey())
	}
}

func TestManualRefreshRunsOnce(t *testing.T) {
	ref := &fakeRefresher{snap: testSnapshot(time.Now(), 0, 0)}
	m := NewModel(config.Default(), ref, &fakeTerminator{}, nil)

	m, cmd := update(t, m, keyRune('r'))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if !m.refreshing {
		t.Error("expected refreshing flag set")
	}

	// A second press while in flight must not start another collection.
	if _, cmd2 := update(t, m, keyRune('r')); cmd2 != nil {
		t.Error("refresh must not stack while one is in flight")
	}

	msg := cmd()
	done, ok := msg.(refreshDoneMsg)
	if !ok {
		t.Fatalf("expected refreshDoneMsg, got %T", msg)
	}
	if ref.calls != 1 {
		t.Errorf("expected exactly one extra collection, got %d", ref.calls)
	}

	m, _ = update(t, m, done)
	if m.refreshing {
		t.Error("refreshing flag must clear")
	}
	if m.snapshot == nil {
		t.Error("refresh result must be applied")
	}
}

func TestStatusExpiresOnTick(t *testing.T) {
	m := newTestModel(t)

	base := time.Now()
	m.now = func() time.Time { return base }
	m.setStatus("hello", false)

	m.now = func() time.Time { return base.Add(statusTTL + time.Second) }
	m, _ = update(t, m, tickMsg(base))

	if m.status != "" {
		t.Errorf("expected status expired, got %q", m.status)
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, SnapshotMsg{Snapshot: testSnapshot(time.Now(), 10, 10,
		system.ProcessInfo{PID: 1, Name: "init", CPUPercent: 1.0})})

	for range allTabs {
		if out := m.View(); out == "" {
			t.Errorf("empty view on tab %v", m.activeTab)
		}
		m, _ = update(t, m, keyRune('l'))
	}
}
