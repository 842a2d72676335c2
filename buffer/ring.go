// File: buffer/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded buffer whose writes always succeed, silently
// overwriting the oldest slot when full. Slot allocation is a single
// atomic increment of a claim counter; the shared committed write count
// advances strictly in claim order, so readers never observe the count
// ahead of a stored value. Loss is accounted per cursor, not here.

package buffer

import (
	"runtime"

	"github.com/momentics/hioload-buffers/api"
	"github.com/momentics/hioload-buffers/internal/concurrency"
)

// Ensure compile-time interface compliance.
var (
	_ api.Buffer[any]       = (*RingBuffer[any])(nil)
	_ api.CursorSource[any] = (*RingBuffer[any])(nil)
)

// RingBuffer is a fixed-capacity overwrite-on-full buffer supporting any
// number of independent Cursor readers over one write stream.
type RingBuffer[T any] struct {
	mask   uint64
	slots  []T
	claim  concurrency.PaddedUint64
	writes concurrency.PaddedUint64
	gate   *concurrency.Gate
}

// NewRingBuffer creates a buffer with 2^capacityExponent slots.
func NewRingBuffer[T any](capacityExponent int) (*RingBuffer[T], error) {
	size, err := capacityFromExponent(capacityExponent)
	if err != nil {
		return nil, err
	}
	return &RingBuffer[T]{
		mask:  size - 1,
		slots: make([]T, size),
		gate:  concurrency.NewGate(),
	}, nil
}

// NewDefaultRingBuffer creates a buffer with the default capacity of
// 2^DefaultCapacityExponent slots.
func NewDefaultRingBuffer[T any]() *RingBuffer[T] {
	b, err := NewRingBuffer[T](DefaultCapacityExponent)
	if err != nil {
		panic(err) // unreachable: the default exponent is always valid
	}
	return b
}

// Write stores an item, overwriting the oldest slot when full. Always
// returns true; present for symmetry with CircularBuffer.Write.
//
// The claim counter hands each concurrent producer a distinct slot; the
// committed write count is then advanced in claim order, each producer
// waiting for its predecessors so a commit is never published before
// its value is stored.
func (b *RingBuffer[T]) Write(item T) bool {
	idx := b.claim.Add(1) - 1
	b.slots[idx&b.mask] = item
	for !b.writes.CompareAndSwap(idx, idx+1) {
		runtime.Gosched()
	}
	b.gate.Wake()
	return true
}

// GetCursor returns a new independent reader initialized to the current
// committed write count; it observes only future writes.
func (b *RingBuffer[T]) GetCursor() api.Cursor[T] {
	base := b.writes.Load()
	return &Cursor[T]{
		ring: b,
		base: base,
		pos:  base & b.mask,
	}
}

// WriteCount returns total committed writes.
func (b *RingBuffer[T]) WriteCount() uint64 { return b.writes.Load() }

// WritePosition returns the physical slot index of the next write.
func (b *RingBuffer[T]) WritePosition() uint64 { return b.writes.Load() & b.mask }

// Capacity returns the fixed slot count.
func (b *RingBuffer[T]) Capacity() int { return len(b.slots) }

// Stats returns a counter snapshot. Read and loss accounting is per
// cursor; only the shared write stream is visible here.
func (b *RingBuffer[T]) Stats() api.Stats {
	return api.Stats{
		WriteCount: b.writes.Load(),
		Capacity:   uint64(len(b.slots)),
	}
}
