//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsToBytes(t *testing.T) {
	tests := []struct {
		bits int
		want int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{64, 8},
		{math.MaxInt, math.MaxInt/8 + 1},
	}

	for _, tt := range tests {
		got, err := BitsToBytes(tt.bits)
		require.NoError(t, err, "bits=%d", tt.bits)
		assert.Equal(t, tt.want, got, "bits=%d", tt.bits)
	}

	_, err := BitsToBytes(-1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestBytesToBits(t *testing.T) {
	got, err := BytesToBits(3)
	require.NoError(t, err)
	assert.Equal(t, 24, got)

	_, err = BytesToBits(math.MaxInt/8 + 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = BytesToBits(-2)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAddInt(t *testing.T) {
	got, err := AddInt(40, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = AddInt(math.MaxInt, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = AddInt(-1, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(123)
	assert.NoError(t, err)
	assert.Equal(t, 123, got)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.ErrorIs(t, err, ErrOverflow)
}
