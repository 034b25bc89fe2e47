package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, n)
	_, _ = r.rand.Read(out)
	return out
}

// Bools returns n pseudo-random bools.
// Locks only once per call (preferred over calling Bool in a loop).
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// SparseBools returns n bools where each is true with probability p.
func (r *RNG) SparseBools(n int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < p
	}
	return out
}

// Model is a naive []bool bit sequence used as a reference in tests.
type Model []bool

// FromBytes expands the first n bits of data, most significant bit first.
func FromBytes(data []byte, n int) Model {
	m := make(Model, n)
	for i := range m {
		m[i] = data[i/8]&(0x80>>(i%8)) != 0
	}
	return m
}

// Pack returns the bits packed most significant bit first. Bits past the
// end of the last byte are zero.
func (m Model) Pack() []byte {
	out := make([]byte, (len(m)+7)/8)
	for i, v := range m {
		if v {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

// Count returns the number of true entries.
func (m Model) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// NextSet returns the first true index >= start, or -1.
func (m Model) NextSet(start int) int {
	for i := max(start, 0); i < len(m); i++ {
		if m[i] {
			return i
		}
	}
	return -1
}

// Combine applies fn to both models over n entries. Entries past the end of
// either model read as false.
func Combine(a, b Model, n int, fn func(x, y bool) bool) Model {
	out := make(Model, n)
	for i := range out {
		out[i] = fn(at(a, i), at(b, i))
	}
	return out
}

func at(m Model, i int) bool {
	return i < len(m) && m[i]
}
