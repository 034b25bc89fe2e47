// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer handed out by this package.
// 64 bytes keeps whole-word scans within a single cache line.
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Cap the result so appends never spill into the padding.
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// ReallocAligned returns an aligned buffer of newSize holding the first
// min(len(old), newSize) bytes of old. Bytes past len(old) are zero.
func ReallocAligned(old []byte, newSize int) []byte {
	buf := AllocAligned(newSize)
	copy(buf, old)
	return buf
}

// IsAligned reports whether b starts on an Alignment boundary.
func IsAligned(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
