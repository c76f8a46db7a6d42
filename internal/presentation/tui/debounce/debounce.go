// Package debounce provides a resettable one-shot timer for bubbletea programs.
//
// A Timer is owned by the model. Each Trigger schedules a FiredMsg and
// invalidates every earlier schedule, so only the last trigger in a burst
// is honoured. Stop invalidates the pending schedule without a new one.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

// FiredMsg is delivered when a scheduled timer elapses.
type FiredMsg struct {
	ID  int64
	Seq int
}

// Timer is a cancellable, reschedulable callback handle.
type Timer struct {
	id      int64
	seq     int
	wait    time.Duration
	pending bool
}

// New creates a Timer with the given default delay.
func New(wait time.Duration) *Timer {
	return &Timer{id: lastID.Add(1), wait: wait}
}

// Trigger schedules the timer after the default delay, replacing any pending schedule.
func (t *Timer) Trigger() tea.Cmd {
	return t.TriggerAfter(t.wait)
}

// TriggerAfter schedules the timer after d, replacing any pending schedule.
func (t *Timer) TriggerAfter(d time.Duration) tea.Cmd {
	t.seq++
	t.pending = true
	msg := FiredMsg{ID: t.id, Seq: t.seq}
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Stop cancels the pending schedule, if any.
func (t *Timer) Stop() {
	t.seq++
	t.pending = false
}

// Pending reports whether a schedule is outstanding.
func (t *Timer) Pending() bool {
	return t.pending
}

// Fired consumes msg and reports whether it is the current schedule of this timer.
// Stale or foreign messages return false.
func (t *Timer) Fired(msg FiredMsg) bool {
	if msg.ID != t.id || msg.Seq != t.seq || !t.pending {
		return false
	}
	t.pending = false
	return true
}
