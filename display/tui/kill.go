package tui

import "fmt"

// killPhase enumerates the kill workflow states.
type killPhase int

const (
	// killIdle means no kill is in flight.
	killIdle killPhase = iota
	// killPendingConfirm means a target is selected and awaiting the
	// confirm or cancel key.
	killPendingConfirm
	// killIssued means the termination signal has been sent; the state
	// returns to idle on the next snapshot cycle.
	killIssued
)

// killState tracks the kill workflow target. The phase transitions are:
//
//	idle -> (kill key on a valid selection) -> pendingConfirm
//	pendingConfirm -> (confirm) -> issued -> (next snapshot) -> idle
//	pendingConfirm -> (cancel, tab switch, or target vanished) -> idle
type killState struct {
	phase killPhase
	pid   int32
	name  string
}

// request moves idle -> pendingConfirm for the given target. Requests made
// in any other phase are ignored.
func (k *killState) request(pid int32, name string) {
	if k.phase != killIdle {
		return
	}
	k.phase = killPendingConfirm
	k.pid = pid
	k.name = name
}

// confirm moves pendingConfirm -> issued and reports whether a termination
// should actually be dispatched.
func (k *killState) confirm() bool {
	if k.phase != killPendingConfirm {
		return false
	}
	k.phase = killIssued
	return true
}

// cancel drops a pending confirmation. An already-issued kill is not
// cancellable; it resolves on the next snapshot.
func (k *killState) cancel() {
	if k.phase == killPendingConfirm {
		k.reset()
	}
}

// reset returns to idle unconditionally.
func (k *killState) reset() {
	k.phase = killIdle
	k.pid = 0
	k.name = ""
}

// prompt renders the confirmation question for the footer.
func (k *killState) prompt() string {
	return fmt.Sprintf("Kill %s (pid %d)? [y/n]", k.name, k.pid)
}
