package bitvec

import (
	"fmt"
	"strings"
)

// Binary renders the stored bytes as space separated groups of 8 binary
// digits, e.g. "01101010 10100000". Bits past Len are shown as stored.
func (b *BitVec) Binary() string {
	data := b.Bytes()
	var sb strings.Builder
	sb.Grow(len(data) * 9)
	for i, v := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08b", v)
	}
	return sb.String()
}

// Chars interprets the stored bytes as UTF-8, replacing invalid sequences
// with U+FFFD.
func (b *BitVec) Chars() string {
	return strings.ToValidUTF8(string(b.Bytes()), "�")
}

// String implements fmt.Stringer.
func (b *BitVec) String() string {
	return fmt.Sprintf("BitVec(len=%d, cap=%d)", b.n, b.region.Cap())
}
