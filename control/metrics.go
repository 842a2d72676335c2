// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime stats collector for buffer-level monitoring.
// Exposes counter snapshots in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-buffers/api"
)

// StatsSource yields a point-in-time counter snapshot for one buffer.
type StatsSource func() api.Stats

// StatsRegistry holds named buffer stat sources.
type StatsRegistry struct {
	mu      sync.RWMutex
	sources map[string]StatsSource
	updated time.Time
}

// NewStatsRegistry creates an empty registry.
func NewStatsRegistry() *StatsRegistry {
	return &StatsRegistry{
		sources: make(map[string]StatsSource),
	}
}

// Register adds or replaces a named stat source.
func (sr *StatsRegistry) Register(name string, source StatsSource) {
	sr.mu.Lock()
	sr.sources[name] = source
	sr.updated = time.Now()
	sr.mu.Unlock()
}

// Unregister removes a named stat source.
func (sr *StatsRegistry) Unregister(name string) {
	sr.mu.Lock()
	delete(sr.sources, name)
	sr.updated = time.Now()
	sr.mu.Unlock()
}

// Snapshot polls every registered source and returns the latest counters.
func (sr *StatsRegistry) Snapshot() map[string]api.Stats {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	out := make(map[string]api.Stats, len(sr.sources))
	for name, source := range sr.sources {
		out[name] = source()
	}
	return out
}
