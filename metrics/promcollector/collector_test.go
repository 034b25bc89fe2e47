package promcollector_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/metrics/promcollector"
)

var _ bitvec.MetricsCollector = (*promcollector.Collector)(nil)

func TestCollector_RecordsBufferLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := promcollector.New(reg, "test")
	require.NoError(t, err)

	bv := bitvec.New(bitvec.WithMetricsCollector(mc))
	for range 17 {
		bv.PushBit(true)
	}
	// 1 byte, then 2, then 4.
	require.Equal(t, 4, bv.Cap())

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.NoError(t, bv.Close())

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		m := mf.GetMetric()[0]
		if m.GetCounter() != nil {
			values[mf.GetName()] = m.GetCounter().GetValue()
		} else {
			values[mf.GetName()] = m.GetGauge().GetValue()
		}
	}
	assert.Equal(t, 1.0, values["test_bitvec_allocations_total"])
	assert.Equal(t, 2.0, values["test_bitvec_reallocations_total"])
	assert.Equal(t, 1.0, values["test_bitvec_releases_total"])
	assert.Equal(t, 0.0, values["test_bitvec_allocation_failures_total"])
	assert.Equal(t, 0.0, values["test_bitvec_reserved_bytes"])
}

func TestCollector_Failures(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := promcollector.New(reg, "test")
	require.NoError(t, err)

	mc.RecordAllocate(8, errors.New("refused"))
	mc.RecordReallocate(8, 16, errors.New("refused"))
	mc.RecordAllocate(8, nil)

	count, err := testutil.GatherAndCount(reg, "test_bitvec_allocation_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		switch mf.GetName() {
		case "test_bitvec_allocation_failures_total":
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		case "test_bitvec_reserved_bytes":
			assert.Equal(t, 8.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := promcollector.New(reg, "dup")
	require.NoError(t, err)

	_, err = promcollector.New(reg, "dup")
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
