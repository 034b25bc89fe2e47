package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityOverflow is returned when a requested size does not fit in int.
	ErrCapacityOverflow = errors.New("storage: capacity overflow")
	// ErrReleased is returned when growing a region after Release.
	ErrReleased = errors.New("storage: region released")
)

// OutOfBoundsError is the panic value of an access outside the region.
type OutOfBoundsError struct {
	Index    int
	Capacity int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("storage: index %d out of bounds for capacity %d", e.Index, e.Capacity)
}
