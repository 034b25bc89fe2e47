package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	assert.Equal(t, a.Bytes(32), b.Bytes(32))
	assert.Equal(t, a.Bools(100), b.Bools(100))

	first := a.Intn(1000)
	a.Reset()
	a.Bytes(32)
	a.Bools(100)
	assert.Equal(t, first, a.Intn(1000))
}

func TestModel_PackRoundTrip(t *testing.T) {
	m := Model{false, true, true, false, true, false, true, false, true, false, true}
	packed := m.Pack()
	assert.Equal(t, []byte{0x6A, 0xA0}, packed)
	assert.Equal(t, m, FromBytes(packed, len(m)))
	assert.Equal(t, 6, m.Count())
	assert.Equal(t, 1, m.NextSet(0))
	assert.Equal(t, 4, m.NextSet(3))
	assert.Equal(t, -1, m.NextSet(11))
}

func TestCombine_PadsShorter(t *testing.T) {
	a := Model{true, true}
	b := Model{true}
	or := Combine(a, b, 3, func(x, y bool) bool { return x || y })
	assert.Equal(t, Model{true, true, false}, or)
}
