package bitvec

import (
	"sync/atomic"
)

// MetricsCollector receives every call a BitVec makes to its allocator.
// Implement this interface to integrate with monitoring systems; see
// metrics/promcollector for a Prometheus implementation.
//
// A collector shared by several buffers must be safe for concurrent use.
type MetricsCollector interface {
	// RecordAllocate is called after a fresh region was requested.
	RecordAllocate(bytes int, err error)

	// RecordReallocate is called after a region was resized.
	RecordReallocate(oldBytes, newBytes int, err error)

	// RecordRelease is called when a region is returned to the allocator.
	RecordRelease(bytes int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, error)        {}
func (NoopMetricsCollector) RecordReallocate(int, int, error) {}
func (NoopMetricsCollector) RecordRelease(int)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	Allocations   atomic.Int64
	Reallocations atomic.Int64
	Releases      atomic.Int64
	Failures      atomic.Int64
	ReservedBytes atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(bytes int, err error) {
	if err != nil {
		b.Failures.Add(1)
		return
	}
	b.Allocations.Add(1)
	b.ReservedBytes.Add(int64(bytes))
}

// RecordReallocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReallocate(oldBytes, newBytes int, err error) {
	if err != nil {
		b.Failures.Add(1)
		return
	}
	b.Reallocations.Add(1)
	b.ReservedBytes.Add(int64(newBytes - oldBytes))
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int) {
	b.Releases.Add(1)
	b.ReservedBytes.Add(-int64(bytes))
}

// MetricsStats is a point-in-time copy of a BasicMetricsCollector.
type MetricsStats struct {
	Allocations   int64
	Reallocations int64
	Releases      int64
	Failures      int64
	ReservedBytes int64
}

// Stats returns a snapshot of the counters.
func (b *BasicMetricsCollector) Stats() MetricsStats {
	return MetricsStats{
		Allocations:   b.Allocations.Load(),
		Reallocations: b.Reallocations.Load(),
		Releases:      b.Releases.Load(),
		Failures:      b.Failures.Load(),
		ReservedBytes: b.ReservedBytes.Load(),
	}
}
