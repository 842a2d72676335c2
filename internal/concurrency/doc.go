// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared concurrency primitives for the buffer family: cache-line-padded
// atomic counters and a waiter-gated broadcast used to park blocking
// readers without spinning.
package concurrency
