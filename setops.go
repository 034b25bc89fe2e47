package bitvec

import "github.com/hupe1980/bitvec/internal/conv"

// Complement returns a BitVec of the same length with every bit flipped.
func (b *BitVec) Complement() (*BitVec, error) {
	return b.combine("complement", b, b.n, func(x, _ byte) byte { return ^x })
}

// Intersection returns b AND o. The result is as long as the shorter operand.
func (b *BitVec) Intersection(o *BitVec) (*BitVec, error) {
	return b.combine("intersection", o, min(b.n, o.n), func(x, y byte) byte { return x & y })
}

// Union returns b OR o. The result is as long as the longer operand; the
// shorter one contributes zero bits past its end.
func (b *BitVec) Union(o *BitVec) (*BitVec, error) {
	return b.combine("union", o, max(b.n, o.n), func(x, y byte) byte { return x | y })
}

// SymmetricDifference returns b XOR o, as long as the longer operand.
func (b *BitVec) SymmetricDifference(o *BitVec) (*BitVec, error) {
	return b.combine("symmetric difference", o, max(b.n, o.n), func(x, y byte) byte { return x ^ y })
}

// Difference returns b AND NOT o, as long as the shorter operand.
func (b *BitVec) Difference(o *BitVec) (*BitVec, error) {
	return b.combine("difference", o, min(b.n, o.n), func(x, y byte) byte { return x &^ y })
}

// Nand returns NOT (b AND o), as long as the shorter operand.
func (b *BitVec) Nand(o *BitVec) (*BitVec, error) {
	return b.combine("nand", o, min(b.n, o.n), func(x, y byte) byte { return ^(x & y) })
}

// Extend appends the bits of o. o may be b itself.
//
// Extend may move the storage region.
func (b *BitVec) Extend(o *BitVec) error {
	srcN := o.n
	if srcN == 0 {
		return nil
	}
	// Copy first so that self-extension reads the original bits.
	src := o.Bytes()

	total, err := conv.AddInt(b.n, srcN)
	if err != nil {
		return translateError("extend", 0, err)
	}
	need, err := conv.BitsToBytes(total)
	if err != nil {
		return translateError("extend", 0, err)
	}
	if err := b.reserve("extend", need); err != nil {
		return err
	}

	if b.n&7 == 0 {
		start := b.n >> 3
		dst := b.region.Slice(start, start+len(src))
		copy(dst, src)
		dst[len(dst)-1] &= tailMask(srcN)
		b.n = total
		return nil
	}

	full := srcN >> 3
	for i := range full {
		b.appendBits("extend", src[i], 8)
	}
	if r := srcN & 7; r != 0 {
		b.appendBits("extend", src[full], r)
	}
	return nil
}

// Concat returns a new BitVec holding b followed by o. Its read cursor is at 0.
func (b *BitVec) Concat(o *BitVec) (*BitVec, error) {
	c, err := b.Clone()
	if err != nil {
		return nil, err
	}
	c.ResetRead()
	if err := c.Extend(o); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// combine builds an n-bit result byte by byte. Each operand byte is masked
// at that operand's own length, so stale tail bits never leak in.
func (b *BitVec) combine(op string, o *BitVec, n int, fn func(x, y byte) byte) (*BitVec, error) {
	c := newBitVec(b.opts)
	used := (n + 7) >> 3
	if err := c.reserve(op, used); err != nil {
		return nil, err
	}
	if used == 0 {
		return c, nil
	}

	dst := c.region.Slice(0, used)
	for i := range dst {
		dst[i] = fn(b.maskedByte(i), o.maskedByte(i))
	}
	dst[used-1] &= tailMask(n)
	c.n = n
	return c, nil
}
