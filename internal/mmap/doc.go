// Package mmap provides anonymous memory mappings for off-heap byte regions.
//
// # Overview
//
// MapAnon reserves a read-write region outside the Go heap. The kernel hands
// out zero-filled pages, so a fresh mapping never exposes stale memory. The
// mapping is released with Close, which is idempotent.
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // valid until Close
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Close is protected by an atomic flag. Callers must ensure no goroutine
// touches Bytes() after Close() returns.
package mmap
