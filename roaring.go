package bitvec

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the index of every set bit.
// Len() must not exceed the 32-bit index space of the bitmap.
func (b *BitVec) ToRoaring() (*roaring.Bitmap, error) {
	if uint64(b.n) > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: %d bits exceed the roaring index space", ErrInvalidLength, b.n)
	}

	rb := roaring.New()
	for i := range b.usedBytes() {
		v := b.maskedByte(i)
		if v == 0 {
			continue
		}
		base := uint32(i) << 3 //nolint:gosec // bounded by the length check above
		for j := uint32(0); v != 0; j++ {
			if v&0x80 != 0 {
				rb.Add(base + j)
			}
			v <<= 1
		}
	}
	return rb, nil
}

// FromRoaring returns an n-bit BitVec with the bitmap's members set.
// A member at or past n fails with *IndexError.
func FromRoaring(rb *roaring.Bitmap, n int, opts ...Option) (*BitVec, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidLength, n)
	}
	if !rb.IsEmpty() {
		last, err := conv.Uint64ToInt(uint64(rb.Maximum()))
		if err != nil {
			return nil, translateError("from roaring", 0, err)
		}
		if last >= n {
			return nil, &IndexError{Index: last, Len: n}
		}
	}

	b, err := NewWithCapacity(n, opts...)
	if err != nil {
		return nil, err
	}
	b.n = n

	it := rb.Iterator()
	for it.HasNext() {
		b.writeBit(int(it.Next()), true)
	}
	return b, nil
}
