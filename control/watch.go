// control/watch.go
// Author: momentics <momentics@gmail.com>
//
// Delta watcher over a stats registry. Capacity pressure in the buffer
// family is observable only through counters, so callers that want to
// react to rejection or loss poll deltas from here.

package control

import (
	"sync"

	"github.com/momentics/hioload-buffers/api"
)

// Delta is the counter movement of one buffer between two polls.
type Delta struct {
	Writes   uint64
	Reads    uint64
	Lost     uint64
	Rejected uint64
}

// Pressured reports whether the interval saw any loss or rejection.
func (d Delta) Pressured() bool { return d.Lost > 0 || d.Rejected > 0 }

// Watcher polls a StatsRegistry and yields per-buffer counter deltas.
type Watcher struct {
	mu       sync.Mutex
	registry *StatsRegistry
	last     map[string]api.Stats
}

// NewWatcher creates a watcher over the given registry.
func NewWatcher(registry *StatsRegistry) *Watcher {
	return &Watcher{
		registry: registry,
		last:     make(map[string]api.Stats),
	}
}

// Poll snapshots every registered buffer and returns the movement since
// the previous Poll. The first Poll of a name reports movement since
// zero; baselines of unregistered buffers are dropped, so a name that
// reappears starts over from zero.
func (w *Watcher) Poll() map[string]Delta {
	current := w.registry.Snapshot()

	w.mu.Lock()
	defer w.mu.Unlock()
	for name := range w.last {
		if _, ok := current[name]; !ok {
			delete(w.last, name)
		}
	}
	out := make(map[string]Delta, len(current))
	for name, stats := range current {
		prev := w.last[name]
		out[name] = Delta{
			Writes:   stats.WriteCount - prev.WriteCount,
			Reads:    stats.ReadCount - prev.ReadCount,
			Lost:     stats.LostCount - prev.LostCount,
			Rejected: stats.RejectedCount - prev.RejectedCount,
		}
		w.last[name] = stats
	}
	return out
}
