// File: buffer/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded thread-safe FIFO queue. Storage is eapache/queue's growable
// ring, guarded by a mutex exactly as that library documents for
// cross-goroutine use; a condition variable parks blocking consumers.

package buffer

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-buffers/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Fifo[any])(nil)

// Fifo is an unbounded MPMC queue. Enqueue always succeeds; each item is
// delivered to exactly one consumer in first-in-first-out order.
type Fifo[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  *queue.Queue
	writes uint64
	reads  uint64
}

// NewFifo creates an empty queue.
func NewFifo[T any]() *Fifo[T] {
	f := &Fifo[T]{items: queue.New()}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Enqueue appends an item and wakes one blocked consumer.
func (f *Fifo[T]) Enqueue(item T) {
	f.mu.Lock()
	f.items.Add(item)
	f.writes++
	f.mu.Unlock()
	f.cond.Signal()
}

// TryDequeue removes and returns the oldest item; ok is false when the
// queue is empty. Never blocks.
func (f *Fifo[T]) TryDequeue() (item T, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items.Length() == 0 {
		return item, false
	}
	item = f.items.Remove().(T)
	f.reads++
	return item, true
}

// Dequeue removes and returns the oldest item, blocking the calling
// goroutine until one is available.
func (f *Fifo[T]) Dequeue() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.items.Length() == 0 {
		f.cond.Wait()
	}
	item := f.items.Remove().(T)
	f.reads++
	return item
}

// DrainTo moves up to len(dst) items into dst and returns the count.
func (f *Fifo[T]) DrainTo(dst []T) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for n < len(dst) && f.items.Length() > 0 {
		dst[n] = f.items.Remove().(T)
		n++
	}
	f.reads += uint64(n)
	return n
}

// Available returns the current item count.
func (f *Fifo[T]) Available() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items.Length()
}

// Stats returns a counter snapshot.
func (f *Fifo[T]) Stats() api.Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return api.Stats{
		WriteCount: f.writes,
		ReadCount:  f.reads,
		Available:  uint64(f.items.Length()),
	}
}
