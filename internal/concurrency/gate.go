// File: internal/concurrency/gate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Gate parks blocking readers until a producer publishes new data.
// Producers pay a single atomic load when nobody is parked; the
// swap-and-close broadcast only runs with registered waiters.

package concurrency

import "sync/atomic"

// Gate is a broadcast wakeup primitive for blocking reads.
//
// Waiter protocol: Enter, Wait to obtain the channel, re-check the data
// condition, then receive. Loading the channel before the re-check
// guarantees any write that lands after the failed check closes the
// channel the waiter holds.
type Gate struct {
	waiters atomic.Int32
	ch      atomic.Pointer[chan struct{}]
}

// NewGate creates a gate with an open wait channel.
func NewGate() *Gate {
	g := &Gate{}
	ch := make(chan struct{})
	g.ch.Store(&ch)
	return g
}

// Enter registers the calling goroutine as a waiter.
func (g *Gate) Enter() { g.waiters.Add(1) }

// Leave deregisters the calling goroutine.
func (g *Gate) Leave() { g.waiters.Add(-1) }

// Wait returns the channel the next Wake will close. Must be called
// between Enter and the final condition re-check.
func (g *Gate) Wait() <-chan struct{} { return *g.ch.Load() }

// Wake releases every currently registered waiter. No-op when idle.
func (g *Gate) Wake() {
	if g.waiters.Load() == 0 {
		return
	}
	next := make(chan struct{})
	prev := g.ch.Swap(&next)
	close(*prev)
}
