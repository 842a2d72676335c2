// File: internal/concurrency/counters.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Padded monotonic counters. Every shared counter in the buffer family
// (write, read, lost, rejected) lives on its own cache line so producers
// and consumers hammering different counters never false-share.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// PaddedUint64 is a monotonically increasing atomic counter padded to a
// full cache line on both sides.
type PaddedUint64 struct {
	_ cpu.CacheLinePad
	v atomic.Uint64
	_ cpu.CacheLinePad
}

// Load returns the current value.
func (c *PaddedUint64) Load() uint64 { return c.v.Load() }

// Store sets the value. Only used during construction.
func (c *PaddedUint64) Store(n uint64) { c.v.Store(n) }

// Add increments by n and returns the new value.
func (c *PaddedUint64) Add(n uint64) uint64 { return c.v.Add(n) }

// CompareAndSwap publishes new only if the counter still holds old.
func (c *PaddedUint64) CompareAndSwap(old, new uint64) bool {
	return c.v.CompareAndSwap(old, new)
}
