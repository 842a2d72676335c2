// File: buffer/circular.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CircularBuffer is a bounded buffer that rejects writes when full.
// Producers contend on a CAS-allocated write index with per-cell
// sequence numbers (Vyukov MPMC discipline), so concurrent writers never
// collide on a slot and a reader never observes an uncommitted value.
// Accepted data is never overwritten; overflow pressure lands entirely
// on RejectedCount.

package buffer

import (
	"sync/atomic"

	"github.com/momentics/hioload-buffers/api"
	"github.com/momentics/hioload-buffers/internal/concurrency"
)

// Ensure compile-time interface compliance.
var _ api.Buffer[any] = (*CircularBuffer[any])(nil)

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// CircularBuffer is a fixed-capacity reject-on-full buffer with one
// embedded read cursor. Writes are MP-safe; reads assume a single
// logical consumer (callers serialize access from multiple goroutines).
type CircularBuffer[T any] struct {
	mask     uint64
	cells    []cell[T]
	writes   concurrency.PaddedUint64
	reads    concurrency.PaddedUint64
	rejected concurrency.PaddedUint64
}

// NewCircularBuffer creates a buffer with 2^capacityExponent slots.
func NewCircularBuffer[T any](capacityExponent int) (*CircularBuffer[T], error) {
	size, err := capacityFromExponent(capacityExponent)
	if err != nil {
		return nil, err
	}
	b := &CircularBuffer[T]{
		mask:  size - 1,
		cells: make([]cell[T], size),
	}
	for i := range b.cells {
		b.cells[i].sequence.Store(uint64(i))
	}
	return b, nil
}

// NewDefaultCircularBuffer creates a buffer with the default capacity
// of 2^DefaultCapacityExponent slots.
func NewDefaultCircularBuffer[T any]() *CircularBuffer[T] {
	b, err := NewCircularBuffer[T](DefaultCapacityExponent)
	if err != nil {
		panic(err) // unreachable: the default exponent is always valid
	}
	return b
}

// Write stores an item into the next free slot. Returns false and
// increments RejectedCount when the buffer is full; no slot is modified
// on rejection.
func (b *CircularBuffer[T]) Write(item T) bool {
	for {
		tail := b.writes.Load()
		c := &b.cells[tail&b.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if b.writes.CompareAndSwap(tail, tail+1) {
				c.data = item
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			b.rejected.Add(1)
			return false
		}
		// tail moved, retry
	}
}

// TryRead removes and returns the oldest unread item; ok is false when
// the buffer is empty. Never blocks.
func (b *CircularBuffer[T]) TryRead() (item T, ok bool) {
	for {
		head := b.reads.Load()
		c := &b.cells[head&b.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if b.reads.CompareAndSwap(head, head+1) {
				item = c.data
				c.sequence.Store(head + b.mask + 1)
				return item, true
			}
		} else if dif < 0 {
			return item, false // empty or value not yet committed
		}
		// head moved, retry
	}
}

// WriteCount returns total accepted writes. Rejected writes never
// advance this counter.
func (b *CircularBuffer[T]) WriteCount() uint64 { return b.writes.Load() }

// ReadCount returns total successful reads.
func (b *CircularBuffer[T]) ReadCount() uint64 { return b.reads.Load() }

// RejectedCount returns writes refused because the buffer was full.
func (b *CircularBuffer[T]) RejectedCount() uint64 { return b.rejected.Load() }

// WritePosition returns the physical slot index of the next write.
func (b *CircularBuffer[T]) WritePosition() uint64 { return b.writes.Load() & b.mask }

// ReadPosition returns the physical slot index of the next read.
func (b *CircularBuffer[T]) ReadPosition() uint64 { return b.reads.Load() & b.mask }

// Available returns items the embedded cursor may still read.
func (b *CircularBuffer[T]) Available() uint64 { return b.writes.Load() - b.reads.Load() }

// Space returns the number of writes still accepted before full.
func (b *CircularBuffer[T]) Space() uint64 { return uint64(len(b.cells)) - b.Available() }

// Capacity returns the fixed slot count.
func (b *CircularBuffer[T]) Capacity() int { return len(b.cells) }

// Stats returns a counter snapshot.
func (b *CircularBuffer[T]) Stats() api.Stats {
	writes := b.writes.Load()
	reads := b.reads.Load()
	return api.Stats{
		WriteCount:    writes,
		ReadCount:     reads,
		RejectedCount: b.rejected.Load(),
		Available:     writes - reads,
		Capacity:      uint64(len(b.cells)),
	}
}
