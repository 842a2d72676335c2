// control/collector.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus bridge for buffer counters. The collector polls a
// StatsRegistry at scrape time; buffers carry no metric plumbing of
// their own.

package control

import "github.com/prometheus/client_golang/prometheus"

// Ensure compile-time interface compliance.
var _ prometheus.Collector = (*BufferCollector)(nil)

// BufferCollector exports every registered buffer's counters.
type BufferCollector struct {
	registry *StatsRegistry

	writes    *prometheus.Desc
	reads     *prometheus.Desc
	lost      *prometheus.Desc
	rejected  *prometheus.Desc
	available *prometheus.Desc
	capacity  *prometheus.Desc
}

// NewBufferCollector creates a collector over the given registry.
func NewBufferCollector(registry *StatsRegistry) *BufferCollector {
	labels := []string{"buffer"}
	return &BufferCollector{
		registry: registry,
		writes: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "buffer", "writes_total"),
			"Total successful writes.", labels, nil),
		reads: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "buffer", "reads_total"),
			"Total successful reads.", labels, nil),
		lost: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "buffer", "lost_total"),
			"Items overwritten before being read.", labels, nil),
		rejected: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "buffer", "rejected_total"),
			"Writes refused because the buffer was full.", labels, nil),
		available: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "buffer", "available"),
			"Items currently readable.", labels, nil),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName("hioload", "buffer", "capacity"),
			"Fixed slot count; zero for unbounded queues.", labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *BufferCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.writes
	ch <- c.reads
	ch <- c.lost
	ch <- c.rejected
	ch <- c.available
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *BufferCollector) Collect(ch chan<- prometheus.Metric) {
	for name, stats := range c.registry.Snapshot() {
		ch <- prometheus.MustNewConstMetric(c.writes, prometheus.CounterValue,
			float64(stats.WriteCount), name)
		ch <- prometheus.MustNewConstMetric(c.reads, prometheus.CounterValue,
			float64(stats.ReadCount), name)
		ch <- prometheus.MustNewConstMetric(c.lost, prometheus.CounterValue,
			float64(stats.LostCount), name)
		ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue,
			float64(stats.RejectedCount), name)
		ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue,
			float64(stats.Available), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue,
			float64(stats.Capacity), name)
	}
}
