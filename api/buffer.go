// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the hioload-buffers family: unbounded FIFO queues,
// bounded reject-on-full buffers, and bounded overwrite-on-full buffers
// with independent read cursors.
//
// Implementations live in the buffer package; everything here is
// allocation-free and safe to depend on from any consumer package.

package api

// Stats is a point-in-time snapshot of a buffer's counters.
//
// WriteCount, ReadCount, LostCount and RejectedCount are monotonic.
// Available is the number of items a reader could consume right now;
// for bounded buffers it never exceeds Capacity.
type Stats struct {
	WriteCount    uint64
	ReadCount     uint64
	LostCount     uint64
	RejectedCount uint64
	Available     uint64
	Capacity      uint64
}

// Queue is an unbounded thread-safe FIFO. Enqueue always succeeds;
// no item is ever lost or rejected.
type Queue[T any] interface {
	// Enqueue appends an item. Safe under unlimited concurrent producers.
	Enqueue(item T)
	// TryDequeue removes the oldest item without blocking.
	TryDequeue() (T, bool)
	// Dequeue blocks the calling goroutine until an item is available.
	Dequeue() T
	// Available returns the current item count.
	Available() int
}

// Buffer is the bounded write surface shared by the reject and
// overwrite buffer types.
type Buffer[T any] interface {
	// Write stores an item. Reject buffers return false when full;
	// overwrite buffers always return true.
	Write(item T) bool
	// Capacity returns the fixed power-of-two slot count.
	Capacity() int
	// Stats returns a counter snapshot.
	Stats() Stats
}

// Cursor is an independent read position over an overwrite buffer's
// write stream. A cursor is owned by one consumer at a time; distinct
// cursors over the same buffer never contend with each other.
type Cursor[T any] interface {
	// TryRead returns the oldest surviving unread item without blocking.
	TryRead() (T, bool)
	// Read blocks the calling goroutine until an item is available.
	Read() T
	// TryReadBatch fills dst with available items, returns the count.
	TryReadBatch(dst []T) int
	// ReadCount returns total successful reads by this cursor.
	ReadCount() uint64
	// LostCount returns items overwritten before this cursor read them.
	LostCount() uint64
	// ReadPosition returns the physical slot index of the next read.
	ReadPosition() uint64
	// Available returns items this cursor may still read, capped at capacity.
	Available() uint64
	// Space returns capacity minus Available.
	Space() uint64
}

// CursorSource is implemented by buffer types that support multiple
// independent readers over a single write stream.
type CursorSource[T any] interface {
	// GetCursor returns a new reader observing only future writes.
	GetCursor() Cursor[T]
}

// CursorOf returns a fresh cursor when the buffer supports independent
// readers, or ErrNotSupported for single-reader buffer and queue types.
func CursorOf[T any](b any) (Cursor[T], error) {
	src, ok := b.(CursorSource[T])
	if !ok {
		return nil, ErrNotSupported
	}
	return src.GetCursor(), nil
}
