package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/systop/collectors/system"
	"gitlab.com/tinyland/lab/systop/internal/procctl"
)

// SnapshotMsg delivers one collection result to the model. Err is set when
// the cycle failed; Snapshot is nil in that case and the previous state is
// retained on screen.
type SnapshotMsg struct {
	Snapshot  *system.Snapshot
	Timestamp time.Time
	Err       error
}

// tickMsg drives periodic redraws (relative timestamps, status expiry)
// independent of snapshot arrival.
type tickMsg time.Time

// killResultMsg reports the outcome of a termination attempt.
type killResultMsg struct {
	pid int32
	err error
}

// refreshDoneMsg reports the outcome of a manual out-of-cycle refresh.
type refreshDoneMsg struct {
	msg SnapshotMsg
}

// Refresher triggers one out-of-cycle collection without disturbing the
// periodic schedule. *collectors.Runner satisfies it.
type Refresher interface {
	RunOnce(ctx context.Context, name string) (any, error)
}

const refreshTimeout = 10 * time.Second

// tickCmd schedules the next redraw tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd runs one extra collection and delivers its result. The
// periodic ticker's phase is untouched.
func refreshCmd(r Refresher, collector string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		data, err := r.RunOnce(ctx, collector)
		msg := SnapshotMsg{Timestamp: time.Now(), Err: err}
		if snap, ok := data.(*system.Snapshot); ok {
			msg.Snapshot = snap
		}
		return refreshDoneMsg{msg: msg}
	}
}

// killCmd dispatches the termination signal to the target.
func killCmd(t procctl.Terminator, pid int32) tea.Cmd {
	return func() tea.Msg {
		return killResultMsg{pid: pid, err: t.Terminate(pid)}
	}
}
