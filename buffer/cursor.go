// File: buffer/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor is an independent read position over a RingBuffer's write
// stream. A cursor owns only its own counters (read, lost, position);
// the backing store and committed write count are shared. Distinct
// cursors never contend: a slow cursor loses more, a fast one less,
// over the identical sequence of surviving writes.

package buffer

import "github.com/momentics/hioload-buffers/api"

// Ensure compile-time interface compliance.
var _ api.Cursor[any] = (*Cursor[any])(nil)

// Cursor reads from a RingBuffer. Owned by a single consumer goroutine;
// create one per reader via RingBuffer.GetCursor.
type Cursor[T any] struct {
	ring *RingBuffer[T]
	base uint64 // committed write count at creation
	pos  uint64 // physical slot of the next read
	read uint64
	lost uint64
}

// TryRead returns the oldest surviving unread item; ok is false when
// nothing is available. Never blocks.
//
// When the cursor has fallen more than a full capacity behind, the
// overwritten range is charged to LostCount and reading resumes from
// physical slot zero by ascending index. Values recovered after such a
// catch-up may appear out of chronological write order; the counter
// bookkeeping stays exact.
func (c *Cursor[T]) TryRead() (item T, ok bool) {
	avail := c.ring.writes.Load() - c.base - c.read - c.lost
	if avail == 0 {
		return item, false
	}
	if capacity := uint64(len(c.ring.slots)); avail > capacity {
		c.lost += avail - capacity
		c.pos = 0
	}
	item = c.ring.slots[c.pos]
	c.pos = (c.pos + 1) & c.ring.mask
	c.read++
	return item, true
}

// Read returns the next item, blocking the calling goroutine until one
// is available. Parks on the ring's gate rather than spinning.
func (c *Cursor[T]) Read() T {
	if item, ok := c.TryRead(); ok {
		return item
	}
	g := c.ring.gate
	for {
		g.Enter()
		ch := g.Wait()
		if item, ok := c.TryRead(); ok {
			g.Leave()
			return item
		}
		<-ch
		g.Leave()
	}
}

// TryReadBatch fills dst with available items and returns the count.
func (c *Cursor[T]) TryReadBatch(dst []T) int {
	n := 0
	for n < len(dst) {
		item, ok := c.TryRead()
		if !ok {
			break
		}
		dst[n] = item
		n++
	}
	return n
}

// ReadCount returns total successful reads by this cursor.
func (c *Cursor[T]) ReadCount() uint64 { return c.read }

// LostCount returns items overwritten before this cursor read them,
// including overwrites not yet consumed into a catch-up.
func (c *Cursor[T]) LostCount() uint64 {
	lost := c.lost
	avail := c.ring.writes.Load() - c.base - c.read - c.lost
	if capacity := uint64(len(c.ring.slots)); avail > capacity {
		lost += avail - capacity
	}
	return lost
}

// ReadPosition returns the physical slot index of the next read.
func (c *Cursor[T]) ReadPosition() uint64 { return c.pos }

// Available returns items this cursor may still read, capped at the
// buffer capacity.
func (c *Cursor[T]) Available() uint64 {
	avail := c.ring.writes.Load() - c.base - c.read - c.lost
	if capacity := uint64(len(c.ring.slots)); avail > capacity {
		return capacity
	}
	return avail
}

// Space returns Capacity minus Available.
func (c *Cursor[T]) Space() uint64 {
	return uint64(len(c.ring.slots)) - c.Available()
}
