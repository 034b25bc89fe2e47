package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/internal/storage"
	"github.com/hupe1980/bitvec/memory"
)

var (
	// ErrIndexOutOfRange is returned when an index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
	// ErrOutOfMemory is returned when the allocator cannot provide the region.
	ErrOutOfMemory = memory.ErrOutOfMemory
	// ErrCapacityOverflow is returned when a size computation overflows int.
	ErrCapacityOverflow = errors.New("bitvec: capacity overflow")
	// ErrClosed is returned (or panicked with) when a closed BitVec needs storage.
	ErrClosed = errors.New("bitvec: buffer is closed")
	// ErrInvalidLength is returned when a bit length does not fit the supplied data.
	ErrInvalidLength = errors.New("bitvec: invalid length")
)

// IndexError reports an index outside [0, Len).
//
// Len is the bound the index was checked against: bits for bit accessors,
// stored bytes for ByteAt and SetByteAt.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// AllocationError reports a storage request that could not be satisfied.
// Unwrap yields ErrOutOfMemory, ErrCapacityOverflow or the allocator's error.
//
// A BitVec cannot continue safely with a region smaller than it needs, so
// single-unit appends (PushBit, PushByte, SetBit) panic with this error
// instead of returning it.
type AllocationError struct {
	Op    string
	Bytes int
	cause error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("bitvec: %s: cannot reserve %d bytes: %v", e.Op, e.Bytes, e.cause)
}

func (e *AllocationError) Unwrap() error { return e.cause }

func translateError(op string, bytes int, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, storage.ErrReleased) {
		return fmt.Errorf("%w: %s", ErrClosed, op)
	}

	if errors.Is(err, storage.ErrCapacityOverflow) || errors.Is(err, conv.ErrOverflow) {
		return &AllocationError{Op: op, Bytes: bytes, cause: fmt.Errorf("%w: %w", ErrCapacityOverflow, err)}
	}

	return &AllocationError{Op: op, Bytes: bytes, cause: err}
}
