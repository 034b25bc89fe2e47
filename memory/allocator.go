package memory

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hupe1980/bitvec/internal/mem"
)

var (
	// ErrOutOfMemory is returned when a provider cannot satisfy a request.
	ErrOutOfMemory = errors.New("memory: out of memory")
	// ErrInvalidSize is returned for zero or negative sizes.
	ErrInvalidSize = errors.New("memory: invalid size")
	// ErrUnknownBuffer is returned when releasing a buffer the provider did not hand out.
	ErrUnknownBuffer = errors.New("memory: unknown buffer")
)

// Allocator is a raw-memory provider.
//
// Implementations used by several buffers at once must be safe for
// concurrent use. Heap, Mmap and Limited are.
type Allocator interface {
	// Allocate returns a zeroed region of exactly size bytes.
	Allocate(size int) ([]byte, error)
	// Reallocate resizes buf to newSize, preserving min(len(buf), newSize)
	// leading bytes. Bytes past len(buf) are zero. buf is invalid afterwards.
	Reallocate(buf []byte, newSize int) ([]byte, error)
	// Release returns buf to the provider. buf is invalid afterwards.
	Release(buf []byte) error
}

// Heap allocates 64-byte aligned regions from the Go heap.
// Release is a no-op; the garbage collector reclaims the region.
type Heap struct{}

// NewHeap returns the heap allocator.
func NewHeap() Heap { return Heap{} }

// Allocate implements Allocator.
func (Heap) Allocate(size int) (buf []byte, err error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	defer recoverOutOfMemory(size, &err)
	return mem.AllocAligned(size), nil
}

// Reallocate implements Allocator.
func (Heap) Reallocate(buf []byte, newSize int) (out []byte, err error) {
	if newSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, newSize)
	}
	defer recoverOutOfMemory(newSize, &err)
	return mem.ReallocAligned(buf, newSize), nil
}

// Release implements Allocator.
func (Heap) Release([]byte) error { return nil }

// recoverOutOfMemory turns a "len out of range" panic from make into
// ErrOutOfMemory. A genuine heap exhaustion is fatal in the Go runtime and
// never reaches this point.
func recoverOutOfMemory(size int, err *error) {
	r := recover()
	if r == nil {
		return
	}
	if re, ok := r.(runtime.Error); ok {
		*err = fmt.Errorf("%w: %d bytes: %w", ErrOutOfMemory, size, re)
		return
	}
	panic(r)
}
