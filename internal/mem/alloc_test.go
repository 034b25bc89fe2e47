package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		ptr := unsafe.Pointer(&buf[0])
		addr := uintptr(ptr)
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
		assert.True(t, IsAligned(buf))

		for _, b := range buf {
			assert.Zero(t, b)
		}
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestReallocAligned(t *testing.T) {
	old := AllocAligned(4)
	copy(old, []byte{1, 2, 3, 4})

	grown := ReallocAligned(old, 16)
	assert.Len(t, grown, 16)
	assert.True(t, IsAligned(grown))
	assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])
	assert.Equal(t, make([]byte, 12), grown[4:])

	shrunk := ReallocAligned(grown, 2)
	assert.Equal(t, []byte{1, 2}, shrunk)
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size)
			}
		})
	}
}
