package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/internal/storage"
)

// BitVec is a growable sequence of bits packed into an owned byte region.
//
// Bit i lives in byte i/8 at mask 0x80>>(i%8): bit 0 is the most significant
// bit of the first byte. A BitVec is not safe for concurrent use.
//
// Growth (PushBit, PushByte, SetBit, Extend, Grow) may move the region to a
// new allocation. Slices the allocator handed out for the old region are
// invalid afterwards; Bytes always returns a copy.
type BitVec struct {
	region  *storage.Region
	n       int // length in bits
	byteIdx int // read cursor
	bitIdx  int
	opts    *options
}

// New returns an empty BitVec. No memory is allocated until the first append.
func New(opts ...Option) *BitVec {
	return newBitVec(resolveOptions(opts))
}

// NewWithCapacity returns an empty BitVec with room for at least bits bits.
func NewWithCapacity(bits int, opts ...Option) (*BitVec, error) {
	b := New(opts...)
	if err := b.allocate(bits); err != nil {
		return nil, err
	}
	return b, nil
}

// FromBytes returns a BitVec holding a copy of data; Len is 8*len(data).
func FromBytes(data []byte, opts ...Option) (*BitVec, error) {
	n, err := conv.BytesToBits(len(data))
	if err != nil {
		return nil, translateError("from bytes", len(data), err)
	}
	return FromBits(data, n, opts...)
}

// FromBits returns a BitVec holding a copy of data with Len n.
// Bits of data at index n and beyond are kept in storage but never read.
func FromBits(data []byte, n int, opts ...Option) (*BitVec, error) {
	if n < 0 || n > len(data)*8 {
		return nil, fmt.Errorf("%w: %d bits from %d bytes", ErrInvalidLength, n, len(data))
	}

	b := New(opts...)
	if err := b.reserve("from bytes", len(data)); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		copy(b.region.Slice(0, len(data)), data)
	}
	b.n = n
	return b, nil
}

func newBitVec(o *options) *BitVec {
	return &BitVec{
		region: storage.New(o.allocator, o.metrics),
		opts:   o,
	}
}

// Len returns the number of bits.
func (b *BitVec) Len() int { return b.n }

// Cap returns the capacity of the storage region in bytes.
func (b *BitVec) Cap() int { return b.region.Cap() }

// ByteLen returns the number of bytes holding at least one valid bit.
func (b *BitVec) ByteLen() int { return b.usedBytes() }

func (b *BitVec) usedBytes() int { return (b.n + 7) >> 3 }

// Grow ensures that another n bits can be appended without reallocating.
func (b *BitVec) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative growth %d", ErrInvalidLength, n)
	}
	total, err := conv.AddInt(b.n, n)
	if err != nil {
		return translateError("grow", 0, err)
	}
	need, err := conv.BitsToBytes(total)
	if err != nil {
		return translateError("grow", 0, err)
	}
	return b.reserve("grow", need)
}

// Clone returns an independent copy, including the read cursor.
func (b *BitVec) Clone() (*BitVec, error) {
	c := newBitVec(b.opts)
	used := b.usedBytes()
	if err := c.reserve("clone", used); err != nil {
		return nil, err
	}
	if used > 0 {
		copy(c.region.Slice(0, used), b.region.Slice(0, used))
	}
	c.n = b.n
	c.byteIdx, c.bitIdx = b.byteIdx, b.bitIdx
	return c, nil
}

// Close releases the storage region. It is idempotent.
// After Close the BitVec behaves like an empty buffer, except that growing
// it fails with ErrClosed: Grow and Extend return the error, PushBit,
// PushByte and SetBit panic with it.
func (b *BitVec) Close() error {
	if b.region.Released() {
		return nil
	}
	capacity := b.region.Cap()
	err := b.region.Release()
	b.n = 0
	b.byteIdx, b.bitIdx = 0, 0
	b.opts.logger.LogRelease(capacity, err)
	return err
}

// Reset empties the BitVec and rewinds the cursor. Capacity is kept.
func (b *BitVec) Reset() {
	if used := b.usedBytes(); used > 0 {
		clear(b.region.Slice(0, used))
	}
	b.n = 0
	b.byteIdx, b.bitIdx = 0, 0
}

// Bit returns the bit at index i.
func (b *BitVec) Bit(i int) (bool, error) {
	if i < 0 || i >= b.n {
		return false, &IndexError{Index: i, Len: b.n}
	}
	return b.region.Load(i>>3)&(0x80>>(i&7)) != 0, nil
}

// SetBit sets the bit at index i. Setting past the end extends the BitVec to
// i+1 bits; the gap reads as zero. A negative i panics with *IndexError.
func (b *BitVec) SetBit(i int, v bool) {
	if i < 0 {
		panic(&IndexError{Index: i, Len: b.n})
	}
	if i >= b.n {
		b.mustReserve("set bit", i>>3+1)
		b.zeroRange(b.n, i+1)
		b.n = i + 1
	}
	b.writeBit(i, v)
}

// PushBit appends a bit.
func (b *BitVec) PushBit(v bool) {
	var src byte
	if v {
		src = 0x80
	}
	b.appendBits("push bit", src, 1)
}

// PopBit removes and returns the last bit. ok is false if the BitVec is empty.
// A read cursor at or past the new length moves back one bit.
func (b *BitVec) PopBit() (v bool, ok bool) {
	if b.n == 0 {
		return false, false
	}
	i := b.n - 1
	idx, mask := i>>3, byte(0x80)>>(i&7)
	cur := b.region.Load(idx)
	b.region.Store(idx, cur&^mask)
	b.n = i
	if pos := b.ReadPosition(); pos >= b.n && pos > 0 {
		b.retractCursor()
	}
	b.clampCursor()
	return cur&mask != 0, true
}

// PushByte appends the 8 bits of v, most significant first.
func (b *BitVec) PushByte(v byte) {
	b.appendBits("push byte", v, 8)
}

// PopByte removes the last 8 bits and returns them as a byte, regardless of
// alignment. With fewer than 8 bits left it removes all of them and returns
// them in the high bits of the result.
func (b *BitVec) PopByte() (byte, bool) {
	if b.n == 0 {
		return 0, false
	}

	if b.n < 8 {
		v := b.region.Load(0) & MaskMSB(b.n)
		b.region.Store(0, 0)
		b.n = 0
		b.clampCursor()
		return v, true
	}

	tail := b.n & 7
	if tail == 0 {
		last := b.n>>3 - 1
		v := b.region.Load(last)
		b.region.Store(last, 0)
		b.n -= 8
		b.clampCursor()
		return v, true
	}

	// The last 8 bits are the low 8-tail bits of prev followed by the high
	// tail bits of last.
	last := b.n >> 3
	prev := b.region.Load(last - 1)
	v := prev<<tail | b.region.Load(last)>>(8-tail)
	b.region.Store(last-1, prev&MaskMSB(tail))
	b.region.Store(last, 0)
	b.n -= 8
	b.clampCursor()
	return v, true
}

// PopStoredByte removes the last stored byte, whether full or partial, and
// returns it with the bits past Len cleared. Len shrinks to a multiple of 8.
func (b *BitVec) PopStoredByte() (byte, bool) {
	if b.n == 0 {
		return 0, false
	}
	last := (b.n - 1) >> 3
	v := b.region.Load(last) & tailMask(b.n)
	b.region.Store(last, 0)
	b.n = last << 3
	b.clampCursor()
	return v, true
}

// ByteAt returns stored byte i with the bits past Len cleared.
func (b *BitVec) ByteAt(i int) (byte, error) {
	used := b.usedBytes()
	if i < 0 || i >= used {
		return 0, &IndexError{Index: i, Len: used}
	}
	return b.maskedByte(i), nil
}

// SetByteAt overwrites stored byte i. Bits of v that fall past Len are
// dropped, so the length never changes.
func (b *BitVec) SetByteAt(i int, v byte) error {
	used := b.usedBytes()
	if i < 0 || i >= used {
		return &IndexError{Index: i, Len: used}
	}
	if i == used-1 {
		v &= tailMask(b.n)
	}
	b.region.Store(i, v)
	return nil
}

// Fill sets every bit in [0, Len()) to v.
func (b *BitVec) Fill(v bool) {
	used := b.usedBytes()
	if used == 0 {
		return
	}
	var fill byte
	if v {
		fill = 0xFF
	}
	dst := b.region.Slice(0, used)
	for i := range dst {
		dst[i] = fill
	}
	dst[used-1] &= tailMask(b.n)
}

// NextSetBit returns the smallest index >= start whose bit is set.
// ok is false if there is none.
func (b *BitVec) NextSetBit(start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if start >= b.n {
		return -1, false
	}

	last := (b.n - 1) >> 3
	idx := start >> 3
	cur := b.region.Load(idx) & MaskLSB(8-(start&7))
	for {
		if idx == last {
			cur &= tailMask(b.n)
		}
		if cur != 0 {
			return idx<<3 + bits.LeadingZeros8(cur), true
		}
		idx++
		if idx > last {
			return -1, false
		}
		cur = b.region.Load(idx)
	}
}

// IsZero reports whether no bit in [0, Len()) is set.
func (b *BitVec) IsZero() bool {
	for i := range b.usedBytes() {
		if b.maskedByte(i) != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (b *BitVec) Count() int {
	count := 0
	for i := range b.usedBytes() {
		count += bits.OnesCount8(b.maskedByte(i))
	}
	return count
}

// Equal reports whether o has the same length and bits.
func (b *BitVec) Equal(o *BitVec) bool {
	if b.n != o.n {
		return false
	}
	for i := range b.usedBytes() {
		if b.maskedByte(i) != o.maskedByte(i) {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the stored bytes [0, ByteLen()) exactly as stored,
// without framing. Bits past Len in the last byte are whatever storage holds.
func (b *BitVec) Bytes() []byte {
	used := b.usedBytes()
	out := make([]byte, used)
	if used > 0 {
		copy(out, b.region.Slice(0, used))
	}
	return out
}

// MaskMSB returns a byte with the n most significant bits set, 0 <= n <= 8.
func MaskMSB(n int) byte {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("bitvec: mask width %d out of range [0, 8]", n))
	}
	return byte(0xFF) << (8 - n)
}

// MaskLSB returns a byte with the n least significant bits set, 0 <= n <= 8.
func MaskLSB(n int) byte {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("bitvec: mask width %d out of range [0, 8]", n))
	}
	return byte(0xFF) >> (8 - n)
}

// tailMask keeps the valid bits of the last stored byte of an n-bit buffer.
func tailMask(n int) byte {
	if r := n & 7; r != 0 {
		return MaskMSB(r)
	}
	return 0xFF
}

// maskedByte returns stored byte i with bits past Len cleared; bytes past
// the stored range read as zero.
func (b *BitVec) maskedByte(i int) byte {
	used := b.usedBytes()
	if i >= used {
		return 0
	}
	v := b.region.Load(i)
	if i == used-1 {
		v &= tailMask(b.n)
	}
	return v
}

func (b *BitVec) writeBit(i int, v bool) {
	idx, mask := i>>3, byte(0x80)>>(i&7)
	cur := b.region.Load(idx)
	if v {
		cur |= mask
	} else {
		cur &^= mask
	}
	b.region.Store(idx, cur)
}

// appendBits appends the k high bits of src (1 <= k <= 8). When the length
// is not byte aligned, src is split across the tail byte and a new byte.
func (b *BitVec) appendBits(op string, src byte, k int) {
	src &= MaskMSB(k)
	b.mustReserve(op, (b.n+k+7)>>3)

	idx, off := b.n>>3, b.n&7
	if off == 0 {
		b.region.Store(idx, src)
	} else {
		b.region.Store(idx, b.region.Load(idx)&MaskMSB(off)|src>>off)
		if off+k > 8 {
			b.region.Store(idx+1, src<<(8-off))
		}
	}
	b.n += k
}

// zeroRange clears the stored bits [from, to), rounding up to whole bytes.
func (b *BitVec) zeroRange(from, to int) {
	if from >= to {
		return
	}
	first := from >> 3
	if off := from & 7; off != 0 {
		b.region.Store(first, b.region.Load(first)&MaskMSB(off))
		first++
	}
	if end := (to + 7) >> 3; first < end {
		clear(b.region.Slice(first, end))
	}
}

func (b *BitVec) allocate(hintBits int) error {
	before := b.region.Cap()
	err := b.region.Allocate(hintBits)
	if err != nil {
		nb, _ := conv.BitsToBytes(hintBits)
		err = translateError("allocate", nb, err)
	}
	b.opts.logger.LogGrow(before, b.region.Cap(), b.n, err)
	return err
}

func (b *BitVec) reserve(op string, nBytes int) error {
	before := b.region.Cap()
	if nBytes <= before {
		return nil
	}
	err := b.region.Reserve(nBytes)
	if err != nil {
		err = translateError(op, nBytes, err)
	}
	b.opts.logger.LogGrow(before, b.region.Cap(), b.n, err)
	return err
}

func (b *BitVec) mustReserve(op string, nBytes int) {
	if err := b.reserve(op, nBytes); err != nil {
		panic(err)
	}
}
