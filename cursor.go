package bitvec

import "io"

// ReadBit returns the bit under the read cursor and advances the cursor.
// It returns io.EOF, leaving the cursor unchanged, once every bit was read.
func (b *BitVec) ReadBit() (bool, error) {
	pos := b.ReadPosition()
	if pos >= b.n {
		return false, io.EOF
	}
	v := b.region.Load(b.byteIdx)&(0x80>>b.bitIdx) != 0
	if b.bitIdx == 7 {
		b.byteIdx++
		b.bitIdx = 0
	} else {
		b.bitIdx++
	}
	return v, nil
}

// ReadByte reads the next 8 bits, most significant first. It implements
// io.ByteReader.
//
// If no bit is left it returns io.EOF. If fewer than 8 bits are left they are
// consumed and io.ErrUnexpectedEOF is returned; the cursor is not rewound.
func (b *BitVec) ReadByte() (byte, error) {
	var v byte
	for i := range 8 {
		bit, err := b.ReadBit()
		if err != nil {
			if i == 0 {
				return 0, io.EOF
			}
			return 0, io.ErrUnexpectedEOF
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// ResetRead moves the read cursor back to bit 0.
func (b *BitVec) ResetRead() {
	b.byteIdx, b.bitIdx = 0, 0
}

// SetReadPosition moves the read cursor to bit i.
func (b *BitVec) SetReadPosition(i int) error {
	if i < 0 || i >= b.n {
		return &IndexError{Index: i, Len: b.n}
	}
	b.byteIdx, b.bitIdx = i>>3, i&7
	return nil
}

// ReadPosition returns the index of the next bit ReadBit will return.
func (b *BitVec) ReadPosition() int {
	return b.byteIdx<<3 + b.bitIdx
}

// Cursor returns the read position split into byte and bit index.
func (b *BitVec) Cursor() (byteIndex, bitIndex int) {
	return b.byteIdx, b.bitIdx
}

// Remaining returns the number of bits left to read.
func (b *BitVec) Remaining() int {
	return b.n - b.ReadPosition()
}

// retractCursor moves the read cursor back one bit.
func (b *BitVec) retractCursor() {
	if b.bitIdx == 0 {
		b.byteIdx--
		b.bitIdx = 7
		return
	}
	b.bitIdx--
}

// clampCursor keeps the cursor within [0, Len()] after the buffer shrank.
func (b *BitVec) clampCursor() {
	if b.ReadPosition() > b.n {
		b.byteIdx, b.bitIdx = b.n>>3, b.n&7
	}
}
