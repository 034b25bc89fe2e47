package bitvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

func TestToRoaring(t *testing.T) {
	b := mustFromBits(t, []byte{0x6A, 0xFF}, 11)
	rb, err := b.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 4, 6, 8, 9, 10}, rb.ToArray())
}

func TestRoaring_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(13)
	want := testutil.Model(rng.SparseBools(3000, 0.1))
	b := mustFromBits(t, want.Pack(), len(want))

	rb, err := b.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, uint64(want.Count()), rb.GetCardinality())

	back, err := FromRoaring(rb, len(want))
	require.NoError(t, err)
	assert.True(t, b.Equal(back))
}

func TestFromRoaring(t *testing.T) {
	t.Run("MemberPastLength", func(t *testing.T) {
		rb := roaring.BitmapOf(3, 10)
		_, err := FromRoaring(rb, 10)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, 10, ie.Index)
	})

	t.Run("Empty", func(t *testing.T) {
		b, err := FromRoaring(roaring.New(), 20)
		require.NoError(t, err)
		assert.Equal(t, 20, b.Len())
		assert.True(t, b.IsZero())
	})

	t.Run("NegativeLength", func(t *testing.T) {
		_, err := FromRoaring(roaring.New(), -1)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}
