// Package sequence provides the monotonic counters behind order ids and
// arrival sequence numbers. No globals: each allocator is an explicit
// dependency, and Reset exists only for resuming after snapshot load and
// WAL replay.
package sequence

import "sync/atomic"

// Allocator hands out strictly increasing uint64 values.
type Allocator struct {
	next atomic.Uint64
}

// New creates an allocator that continues after start.
// Fresh boot: start = 0. After replay: start = last applied value.
func New(start uint64) *Allocator {
	a := &Allocator{}
	a.next.Store(start)
	return a
}

// Next returns the next value.
func (a *Allocator) Next() uint64 {
	return a.next.Add(1)
}

// Current returns the last issued value.
func (a *Allocator) Current() uint64 {
	return a.next.Load()
}

// Reset jumps the allocator forward. Only used during recovery.
func (a *Allocator) Reset(v uint64) {
	a.next.Store(v)
}
