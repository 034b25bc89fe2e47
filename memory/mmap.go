package memory

import (
	"fmt"
	"sync"

	"github.com/hupe1980/bitvec/internal/mmap"
)

// Mmap allocates regions as anonymous memory mappings outside the Go heap.
//
// Every region is at least one page of physical memory once touched, so Mmap
// suits large, long-lived buffers. Reallocate maps a new region, copies and
// unmaps the old one.
type Mmap struct {
	mu   sync.Mutex
	live map[*byte]*mmap.Mapping
}

// NewMmap creates an Mmap allocator.
func NewMmap() *Mmap {
	return &Mmap{live: make(map[*byte]*mmap.Mapping)}
}

// Allocate implements Allocator.
func (m *Mmap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	mapping, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, size, err)
	}

	buf := mapping.Bytes()

	m.mu.Lock()
	m.live[&buf[0]] = mapping
	m.mu.Unlock()

	return buf, nil
}

// Reallocate implements Allocator.
func (m *Mmap) Reallocate(buf []byte, newSize int) ([]byte, error) {
	if len(buf) == 0 {
		return m.Allocate(newSize)
	}

	out, err := m.Allocate(newSize)
	if err != nil {
		return nil, err
	}
	copy(out, buf)

	if err := m.Release(buf); err != nil {
		_ = m.Release(out)
		return nil, err
	}
	return out, nil
}

// Release implements Allocator.
func (m *Mmap) Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	m.mu.Lock()
	mapping, ok := m.live[&buf[0]]
	if !ok {
		m.mu.Unlock()
		return ErrUnknownBuffer
	}
	if size := mapping.Size(); len(buf) != size {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d bytes of a %d-byte mapping", ErrUnknownBuffer, len(buf), size)
	}
	delete(m.live, &buf[0])
	m.mu.Unlock()

	return mapping.Close()
}

// Live returns the number of regions currently mapped.
func (m *Mmap) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}
