// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection layer for the buffer family.
//
// Buffers expose monotonic counters; this package aggregates them:
//   - StatsRegistry: named stat sources with point-in-time snapshots
//   - Watcher: per-interval counter deltas for pressure detection
//   - BufferCollector: Prometheus bridge over a registry
//
// The hot read/write paths never touch this package; callers register a
// buffer's Stats method once and poll from their own cadence.
package control
