package storage

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/memory"
)

// Observer receives every provider call made by a Region.
type Observer interface {
	RecordAllocate(bytes int, err error)
	RecordReallocate(oldBytes, newBytes int, err error)
	RecordRelease(bytes int)
}

type noopObserver struct{}

func (noopObserver) RecordAllocate(int, error)        {}
func (noopObserver) RecordReallocate(int, int, error) {}
func (noopObserver) RecordRelease(int)                {}

// Region is an exclusively owned, growable byte region.
type Region struct {
	alloc    memory.Allocator
	observer Observer
	buf      []byte // exactly as returned by alloc; len(buf) is the capacity
	released bool
}

// New creates an empty region backed by alloc.
// A nil alloc uses memory.Heap, a nil observer discards events.
func New(alloc memory.Allocator, observer Observer) *Region {
	if alloc == nil {
		alloc = memory.Heap{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &Region{alloc: alloc, observer: observer}
}

// Allocate reserves ceil(hintBits/8) zeroed bytes for an empty region.
func (r *Region) Allocate(hintBits int) error {
	n, err := conv.BitsToBytes(hintBits)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}
	return r.Reserve(n)
}

// Cap returns the capacity in bytes.
func (r *Region) Cap() int { return len(r.buf) }

// Released reports whether Release has been called.
func (r *Region) Released() bool { return r.released }

// Reserve ensures Cap() >= n.
func (r *Region) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrCapacityOverflow, n)
	}
	if n <= len(r.buf) {
		return nil
	}
	return r.Grow(n - len(r.buf))
}

// Grow makes room for at least minAdditional more bytes.
//
// The new capacity is max(2*Cap(), Cap()+minAdditional); an empty region
// gets exactly max(minAdditional, 1). Bytes past the old capacity are zero.
func (r *Region) Grow(minAdditional int) error {
	if r.released {
		return ErrReleased
	}
	if minAdditional < 0 {
		return fmt.Errorf("%w: negative growth %d", ErrCapacityOverflow, minAdditional)
	}
	if minAdditional == 0 {
		return nil
	}

	cur := len(r.buf)
	if cur == 0 {
		size := max(minAdditional, 1)
		buf, err := r.alloc.Allocate(size)
		if err == nil && len(buf) != size {
			_ = r.alloc.Release(buf)
			err = sizeMismatch(len(buf), size)
		}
		r.observer.RecordAllocate(size, err)
		if err != nil {
			return err
		}
		clear(buf)
		r.buf = buf
		return nil
	}

	newCap, err := conv.AddInt(cur, minAdditional)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}
	if doubled, err := conv.AddInt(cur, cur); err == nil && doubled > newCap {
		newCap = doubled
	}

	buf, err := r.alloc.Reallocate(r.buf, newCap)
	if err == nil && len(buf) != newCap {
		// The old region now belongs to the allocator and the new one is
		// unusable, so the region is gone.
		err = sizeMismatch(len(buf), newCap)
		_ = r.alloc.Release(buf)
		r.observer.RecordReallocate(cur, newCap, err)
		r.observer.RecordRelease(cur)
		r.buf = nil
		r.released = true
		return err
	}
	r.observer.RecordReallocate(cur, newCap, err)
	if err != nil {
		return err
	}
	// New bytes are zeroed here whatever the allocator returned.
	clear(buf[cur:])
	r.buf = buf
	return nil
}

// Release returns the region to the allocator. It is idempotent.
func (r *Region) Release() error {
	if r.released {
		return nil
	}
	r.released = true

	if len(r.buf) == 0 {
		return nil
	}
	buf := r.buf
	r.buf = nil
	r.observer.RecordRelease(len(buf))
	return r.alloc.Release(buf)
}

// Load returns the byte at i.
func (r *Region) Load(i int) byte {
	r.check(i)
	return r.buf[i]
}

// Store writes b at i.
func (r *Region) Store(i int, b byte) {
	r.check(i)
	r.buf[i] = b
}

// Slice returns the bytes in [from, to). The slice aliases the region.
func (r *Region) Slice(from, to int) []byte {
	if from > to {
		panic(&OutOfBoundsError{Index: from, Capacity: len(r.buf)})
	}
	if from == to {
		return nil
	}
	r.check(from)
	r.check(to - 1)
	return r.buf[from:to:to]
}

func (r *Region) check(i int) {
	if i < 0 || i >= len(r.buf) {
		panic(&OutOfBoundsError{Index: i, Capacity: len(r.buf)})
	}
}

func sizeMismatch(got, want int) error {
	return fmt.Errorf("%w: allocator returned %d bytes, want %d", memory.ErrOutOfMemory, got, want)
}
