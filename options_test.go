package bitvec

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/memory"
)

func TestResolveOptions_Defaults(t *testing.T) {
	o := resolveOptions(nil)
	assert.IsType(t, memory.Heap{}, o.allocator)
	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metrics)
}

func TestResolveOptions_MemoryLimitWrapsAllocator(t *testing.T) {
	mm := memory.NewMmap()
	o := resolveOptions([]Option{WithAllocator(mm), WithMemoryLimit(1 << 10)})

	limited, ok := o.allocator.(*memory.Limited)
	require.True(t, ok)
	assert.Equal(t, int64(1<<10), limited.Limit())
}

func TestWithLogger_LogsGrowth(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := New(WithLogger(logger))
	b.PushBit(true)
	require.NoError(t, b.Close())

	out := buf.String()
	assert.Contains(t, out, `"msg":"storage grown"`)
	assert.Contains(t, out, `"new_capacity":1`)
	assert.Contains(t, out, `"length_bits":0`)
	assert.Contains(t, out, `"msg":"storage released"`)
	assert.Contains(t, out, `"capacity_bytes":1`)
}

func TestWithLogger_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	_, err := NewWithCapacity(64, WithLogger(logger), WithMemoryLimit(1))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "storage growth failed")
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithLength(11).WithCapacity(2)
	logger.Info("state")
	assert.Contains(t, buf.String(), "length_bits=11")
	assert.Contains(t, buf.String(), "capacity_bytes=2")
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	mc.RecordAllocate(4, nil)
	mc.RecordReallocate(4, 8, nil)
	mc.RecordReallocate(8, 16, errors.New("refused"))
	mc.RecordRelease(8)

	assert.Equal(t, MetricsStats{
		Allocations:   1,
		Reallocations: 1,
		Releases:      1,
		Failures:      1,
		ReservedBytes: 0,
	}, mc.Stats())
}

func TestAllocationError(t *testing.T) {
	err := translateError("push bit", 8, memory.ErrOutOfMemory)

	var ae *AllocationError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "push bit", ae.Op)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, "bitvec: push bit: cannot reserve 8 bytes: memory: out of memory", err.Error())

	assert.NoError(t, translateError("noop", 0, nil))
}
