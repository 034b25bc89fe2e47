// Package memory provides the raw-memory providers behind a bit buffer.
//
// An Allocator hands out zeroed byte regions, resizes them and takes them
// back. Three implementations are included:
//
//   - Heap: Go heap, 64-byte aligned (the default)
//   - Mmap: off-heap anonymous mappings, invisible to the garbage collector
//   - Limited: wraps another Allocator with a hard byte budget
//
// # Contract
//
// Allocate and Reallocate return exactly the requested number of bytes.
// Bytes that did not exist before the call are zero. The slice returned by
// Allocate or Reallocate is the handle for the region: Release and
// Reallocate must receive it unchanged (same start address), and any other
// slice derived from a region is invalid once that region is reallocated or
// released.
//
// A request the provider cannot satisfy fails with ErrOutOfMemory.
//
// # Example
//
//	alloc := memory.NewLimited(memory.NewMmap(), 64<<20)
//	bv, err := bitvec.NewWithCapacity(1<<20, bitvec.WithAllocator(alloc))
package memory
