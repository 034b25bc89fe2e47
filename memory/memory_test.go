package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/internal/mem"
)

var (
	_ Allocator = Heap{}
	_ Allocator = (*Mmap)(nil)
	_ Allocator = (*Limited)(nil)
)

func testAllocator(t *testing.T, a Allocator) {
	t.Helper()

	buf, err := a.Allocate(10)
	require.NoError(t, err)
	require.Len(t, buf, 10)
	assert.Equal(t, make([]byte, 10), buf)

	for i := range buf {
		buf[i] = byte(i + 1)
	}

	grown, err := a.Reallocate(buf, 4096)
	require.NoError(t, err)
	require.Len(t, grown, 4096)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, grown[:10])
	assert.Equal(t, make([]byte, 4096-10), grown[10:])

	require.NoError(t, a.Release(grown))

	_, err = a.Allocate(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestHeap(t *testing.T) {
	testAllocator(t, NewHeap())

	buf, err := NewHeap().Allocate(128)
	require.NoError(t, err)
	assert.True(t, mem.IsAligned(buf))
}

func TestHeap_ImpossibleSize(t *testing.T) {
	_, err := NewHeap().Allocate(math.MaxInt)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestMmap(t *testing.T) {
	m := NewMmap()
	testAllocator(t, m)
	assert.Zero(t, m.Live())

	buf, err := m.Allocate(100)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Live())

	require.NoError(t, m.Release(buf))
	assert.ErrorIs(t, m.Release(buf), ErrUnknownBuffer)
	assert.NoError(t, m.Release(nil))
}

func TestMmap_ReleaseRejectsResizedSlice(t *testing.T) {
	m := NewMmap()
	buf, err := m.Allocate(100)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Release(buf[:50]), ErrUnknownBuffer)
	assert.Equal(t, 1, m.Live(), "mapping stays live")

	require.NoError(t, m.Release(buf))
	assert.Zero(t, m.Live())
}

func TestLimited(t *testing.T) {
	testAllocator(t, NewLimited(nil, 0))
}

func TestLimited_Budget(t *testing.T) {
	l := NewLimited(NewHeap(), 100)
	assert.Equal(t, int64(100), l.Limit())

	a, err := l.Allocate(60)
	require.NoError(t, err)
	assert.Equal(t, int64(60), l.Usage())

	_, err = l.Allocate(50)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, int64(60), l.Usage())

	// Growing past the limit fails and leaves the region intact.
	_, err = l.Reallocate(a, 120)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, int64(60), l.Usage())

	a, err = l.Reallocate(a, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), l.Usage())

	a, err = l.Reallocate(a, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), l.Usage())

	require.NoError(t, l.Release(a))
	assert.Zero(t, l.Usage())
	assert.Equal(t, int64(100), l.Peak())
}

func TestLimited_SharedAcrossRegions(t *testing.T) {
	l := NewLimited(NewMmap(), 8192)

	a, err := l.Allocate(4096)
	require.NoError(t, err)
	b, err := l.Allocate(4096)
	require.NoError(t, err)

	_, err = l.Allocate(1)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	require.NoError(t, l.Release(a))
	c, err := l.Allocate(1)
	require.NoError(t, err)

	require.NoError(t, l.Release(b))
	require.NoError(t, l.Release(c))
	assert.Zero(t, l.Usage())
}
