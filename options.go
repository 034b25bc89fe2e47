package bitvec

import (
	"log/slog"

	"github.com/hupe1980/bitvec/memory"
)

type options struct {
	allocator   memory.Allocator
	memoryLimit int64
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures a BitVec at construction.
//
// Buffers derived from a BitVec (Clone, Concat and the set operations)
// share its resolved options, including its allocator and memory budget.
type Option func(*options)

// WithAllocator sets the raw-memory provider.
//
// If nil is passed, memory.Heap is used.
func WithAllocator(a memory.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithMemoryLimit caps the bytes the buffer (and everything derived from it)
// may hold. Requests beyond the limit fail with ErrOutOfMemory.
//
// Example:
//
//	bv, _ := bitvec.NewWithCapacity(1024, bitvec.WithMemoryLimit(4<<10))
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithLogger configures structured logging of storage events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitvec.NewJSONLogger(slog.LevelDebug)
//	bv := bitvec.New(bitvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector receives every allocator call.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}

	if o.allocator == nil {
		o.allocator = memory.NewHeap()
	}
	if o.memoryLimit > 0 {
		o.allocator = memory.NewLimited(o.allocator, o.memoryLimit)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
