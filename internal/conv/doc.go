// Package conv provides overflow-checked integer conversions and size
// arithmetic.
//
// The storage layer uses these helpers whenever a caller-supplied bit count
// is turned into a byte count, so that a huge hint fails with ErrOverflow
// instead of wrapping into a small allocation.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
