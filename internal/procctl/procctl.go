// Package procctl is the process termination boundary. The dashboard only
// ever needs one capability: deliver SIGTERM to a PID and report failure
// (permission denied, already exited) without crashing the session.
package procctl

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Terminator sends a termination signal to a process.
type Terminator interface {
	Terminate(pid int32) error
}

// SignalTerminator delivers SIGTERM via the kernel. The signal function is
// overridable for tests.
type SignalTerminator struct {
	kill func(pid int, sig unix.Signal) error
}

// NewTerminator returns a SignalTerminator backed by unix.Kill.
func NewTerminator() *SignalTerminator {
	return &SignalTerminator{kill: unix.Kill}
}

// Terminate sends SIGTERM to the given PID.
func (t *SignalTerminator) Terminate(pid int32) error {
	if pid <= 0 {
		return fmt.Errorf("invalid pid %d", pid)
	}
	if err := t.kill(int(pid), unix.SIGTERM); err != nil {
		return fmt.Errorf("terminate pid %d: %w", pid, err)
	}
	return nil
}

var _ Terminator = (*SignalTerminator)(nil)
