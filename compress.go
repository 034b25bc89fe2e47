package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/codec"
)

// ExportCompressed returns Bytes() packed into a codec block.
// The block does not carry the bit length.
func (b *BitVec) ExportCompressed(c codec.Compression) ([]byte, error) {
	data := b.Bytes()
	if len(data) > 0 {
		data[len(data)-1] &= tailMask(b.n)
	}
	return codec.Compress(data, c)
}

// FromCompressed decodes a block written by ExportCompressed into an n-bit
// BitVec.
func FromCompressed(block []byte, n int, opts ...Option) (*BitVec, error) {
	data, err := codec.Decompress(block)
	if err != nil {
		return nil, fmt.Errorf("bitvec: from compressed: %w", err)
	}
	return FromBits(data, n, opts...)
}
