// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned, zeroed byte buffers for the heap allocator of
// the memory package.
package mem
