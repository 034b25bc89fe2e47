package promcollector

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "bitvec"

// Collector implements bitvec.MetricsCollector on top of Prometheus
// counters and gauges. It is safe for concurrent use.
type Collector struct {
	allocations   prometheus.Counter
	reallocations prometheus.Counter
	releases      prometheus.Counter
	failures      prometheus.Counter
	reserved      prometheus.Gauge
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations_total",
			Help:      "Regions allocated from empty",
		}),
		reallocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reallocations_total",
			Help:      "Regions grown by reallocation",
		}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "releases_total",
			Help:      "Regions returned to the allocator",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures_total",
			Help:      "Allocate or reallocate calls the allocator refused",
		}),
		reserved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reserved_bytes",
			Help:      "Bytes currently held by live regions",
		}),
	}

	for _, m := range []prometheus.Collector{c.allocations, c.reallocations, c.releases, c.failures, c.reserved} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordAllocate implements bitvec.MetricsCollector.
func (c *Collector) RecordAllocate(bytes int, err error) {
	if err != nil {
		c.failures.Inc()
		return
	}
	c.allocations.Inc()
	c.reserved.Add(float64(bytes))
}

// RecordReallocate implements bitvec.MetricsCollector.
func (c *Collector) RecordReallocate(oldBytes, newBytes int, err error) {
	if err != nil {
		c.failures.Inc()
		return
	}
	c.reallocations.Inc()
	c.reserved.Add(float64(newBytes - oldBytes))
}

// RecordRelease implements bitvec.MetricsCollector.
func (c *Collector) RecordRelease(bytes int) {
	c.releases.Inc()
	c.reserved.Sub(float64(bytes))
}
