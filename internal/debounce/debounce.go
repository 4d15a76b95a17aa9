// Package debounce provides a cancel-then-reschedule timer for Bubble Tea models.
//
// A Debouncer never calls back into the model directly. Trigger returns a
// tea.Cmd that delivers a Msg after the quiet period; the model hands the Msg
// back to Accept, which only succeeds for the most recent Trigger. Calling
// Trigger again or Cancel invalidates every tick still in flight.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used by the list view
const DefaultDelay = 800 * time.Millisecond

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// Msg is delivered when a scheduled quiet period elapses
type Msg struct {
	ID  int64 // owning debouncer
	Tag int   // generation at scheduling time
}

// Debouncer coalesces rapid triggers into a single delayed Msg
type Debouncer struct {
	id       int64
	tag      int
	duration time.Duration
	pending  bool
}

// New creates a debouncer with the given quiet period
func New(duration time.Duration) *Debouncer {
	if duration < 0 {
		duration = 0
	}
	return &Debouncer{
		id:       nextID(),
		duration: duration,
	}
}

// ID returns the debouncer's unique id
func (d *Debouncer) ID() int64 {
	return d.id
}

// Duration returns the quiet period
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}

// Trigger cancels any pending tick and schedules a new one
func (d *Debouncer) Trigger() tea.Cmd {
	d.tag++
	d.pending = true
	id, tag := d.id, d.tag
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return Msg{ID: id, Tag: tag}
	})
}

// Cancel invalidates any pending tick
func (d *Debouncer) Cancel() {
	d.tag++
	d.pending = false
}

// Pending reports whether a tick is scheduled and not yet accepted
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Accept reports whether msg is the latest tick of this debouncer.
// An accepted tick is consumed.
func (d *Debouncer) Accept(msg Msg) bool {
	if msg.ID != d.id || msg.Tag != d.tag || !d.pending {
		return false
	}
	d.pending = false
	return true
}
