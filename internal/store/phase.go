// Package store holds the client-side mirrors of the remote collections.
// Each store owns one collection, applies mutations optimistically, and
// reconciles against the server response: rollback to the captured
// snapshot on failure, wholesale replacement on a successful read.
//
// Concurrent calls are memory-safe but not serialized. Two in-flight
// operations on the same record race, and the last network response wins.
package store

import "sync"

// Phase is the lifecycle of the most recent store operation.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSettled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSettled:
		return "settled"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// collection is the shared mirror state for one remote collection.
// items always reflect either the last successful server read, or that
// read plus/minus speculative local edits not yet confirmed or rejected.
type collection[T any] struct {
	mu       sync.Mutex
	items    []T
	phase    Phase
	inflight int
	lastErr  string
}

// begin marks one round-trip outstanding.
func (c *collection[T]) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
	c.phase = PhasePending
}

// settle closes a round-trip that did not replace the collection.
func (c *collection[T]) settle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	c.phase = PhaseSettled
	c.lastErr = ""
}

// settleWith closes a round-trip with a wholesale replacement. Any item
// the server no longer returns disappears locally, even if a concurrent
// local edit was in flight.
func (c *collection[T]) settleWith(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	c.items = items
	c.phase = PhaseSettled
	c.lastErr = ""
}

// reject surfaces a failure for an operation that never started a
// round-trip (missing token).
func (c *collection[T]) reject(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseFailed
	c.lastErr = msg
}

// fail closes a round-trip and surfaces a human-readable message.
func (c *collection[T]) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	c.phase = PhaseFailed
	c.lastErr = msg
}

// snapshot captures the undo state before an optimistic mutation.
func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := make([]T, len(c.items))
	copy(snap, c.items)
	return snap
}

// restore puts the captured snapshot back verbatim, same order.
func (c *collection[T]) restore(snap []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = snap
}

// mutate applies an optimistic local edit.
func (c *collection[T]) mutate(fn func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
}

// Items returns a copy of the mirrored collection in display order.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// IsLoading is true exactly while at least one round-trip is outstanding.
func (c *collection[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

func (c *collection[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// LastError returns the last surfaced failure message, empty when the
// previous operation succeeded.
func (c *collection[T]) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ClearError dismisses the surfaced message without touching items.
func (c *collection[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = ""
	if c.phase == PhaseFailed {
		c.phase = PhaseIdle
	}
}
