package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a conversion or size computation does not fit
// the target type.
var ErrOverflow = errors.New("integer overflow")

// BitsToBytes returns ceil(bits/8) without overflowing int.
func BitsToBytes(bits int) (int, error) {
	if bits < 0 {
		return 0, fmt.Errorf("%w: bit count %d is negative", ErrOverflow, bits)
	}
	// bits+7 would wrap for the last seven representable values.
	return bits/8 + boolToInt(bits%8 != 0), nil
}

// BytesToBits returns bytes*8 if it fits in int.
func BytesToBits(bytes int) (int, error) {
	if bytes < 0 {
		return 0, fmt.Errorf("%w: byte count %d is negative", ErrOverflow, bytes)
	}
	if bytes > math.MaxInt/8 {
		return 0, fmt.Errorf("%w: %d bytes cannot be addressed in bits", ErrOverflow, bytes)
	}
	return bytes * 8, nil
}

// AddInt returns a+b for non-negative operands, failing instead of wrapping.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: negative operand (%d, %d)", ErrOverflow, a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: %d + %d exceeds int", ErrOverflow, a, b)
	}
	return a + b, nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", ErrOverflow, v)
	}
	return int(v), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
