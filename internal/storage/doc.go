// Package storage implements the owned byte region behind a bit buffer.
//
// A Region holds exactly one allocation obtained from a memory.Allocator and
// is its only owner. It decides how the region grows (doubling, never below
// the requested size), guarantees that every byte added by growth is zero,
// and releases the allocation exactly once.
//
// Access goes through Load, Store and Slice, which check the index against
// the current capacity before touching memory. Slices returned by Slice are
// invalidated by the next Grow, Reserve or Release.
package storage
