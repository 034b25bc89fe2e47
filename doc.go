// Package bitvec provides a growable, bit-addressable buffer.
//
// A BitVec owns one contiguous byte region and exposes it as an ordered
// sequence of bits. Bit 0 is the most significant bit of the first byte:
//
//	index:  0 1 2 3 4 5 6 7 | 8 9 ...
//	byte:   ------ 0 ------ | -- 1 ...
//
// # Quick Start
//
//	bv := bitvec.New()
//	defer bv.Close()
//
//	bv.PushBit(true)
//	bv.PushByte(0xA5)      // unaligned: split across two bytes
//	v, _ := bv.Bit(0)      // true
//	b, _ := bv.PopByte()   // 0xA5
//
// # Growth
//
// Appends grow the region to max(2*Cap, Cap+needed) bytes, so N single-bit
// pushes cost O(log N) reallocations. New bytes are always zeroed. Growth may
// move the region; Bytes returns a copy and never aliases it.
//
// # Reading
//
// A read cursor, independent of the length, walks the bits in order:
//
//	for {
//	    b, err := bv.ReadByte() // io.ByteReader
//	    if err != nil {
//	        break
//	    }
//	    _ = b
//	}
//
// # Set Algebra
//
// Complement, Intersection, Union, SymmetricDifference, Difference and Nand
// return new buffers. AND-like operations yield the shorter length, OR-like
// operations the longer one; the shorter operand reads as zero past its end.
//
// # Memory
//
// Storage comes from a memory.Allocator. The default is the Go heap;
// memory.Mmap keeps the bits off-heap and WithMemoryLimit caps the bytes a
// buffer and everything derived from it may hold:
//
//	bv := bitvec.New(
//	    bitvec.WithAllocator(memory.NewMmap()),
//	    bitvec.WithMemoryLimit(64<<20),
//	)
//
// A BitVec is not safe for concurrent use.
package bitvec
