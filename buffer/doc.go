// Package buffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concurrent buffer family for moving typed values between producer and
// consumer goroutines:
//
//   - Fifo: unbounded MPMC queue, no loss, no rejection.
//   - CircularBuffer: fixed power-of-two capacity, rejects writes when
//     full, never overwrites accepted data.
//   - RingBuffer: fixed power-of-two capacity, writes always succeed and
//     overwrite the oldest slot when full; any number of independent
//     Cursor readers observe the same write stream with per-cursor loss
//     accounting.
//
// All write paths tolerate unlimited concurrent producers. Capacity
// pressure is never an error: it is counted (RejectedCount, LostCount)
// and left to the caller to act on.
package buffer
