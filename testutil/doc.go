// Package testutil provides seeded random bit patterns and a naive reference
// model for property tests of bit buffers.
package testutil
