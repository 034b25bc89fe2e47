package memory

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/resource"
)

// Limited enforces a hard byte budget on top of another Allocator.
// The budget is shared by every region obtained through the same Limited.
type Limited struct {
	inner  Allocator
	budget *resource.Budget
}

// NewLimited wraps inner with a budget of limitBytes.
// A nil inner uses Heap. A limit <= 0 only tracks usage.
func NewLimited(inner Allocator, limitBytes int64) *Limited {
	if inner == nil {
		inner = Heap{}
	}
	return &Limited{
		inner:  inner,
		budget: resource.NewBudget(limitBytes),
	}
}

// Allocate implements Allocator.
func (l *Limited) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := l.budget.Acquire(int64(size)); err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrOutOfMemory, size, err)
	}

	buf, err := l.inner.Allocate(size)
	if err != nil {
		l.budget.Release(int64(size))
		return nil, err
	}
	return buf, nil
}

// Reallocate implements Allocator.
func (l *Limited) Reallocate(buf []byte, newSize int) ([]byte, error) {
	if newSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, newSize)
	}

	delta := int64(newSize) - int64(len(buf))
	if delta > 0 {
		if err := l.budget.Acquire(delta); err != nil {
			return nil, fmt.Errorf("%w: grow %d -> %d bytes: %w", ErrOutOfMemory, len(buf), newSize, err)
		}
	}

	out, err := l.inner.Reallocate(buf, newSize)
	if err != nil {
		if delta > 0 {
			l.budget.Release(delta)
		}
		return nil, err
	}

	if delta < 0 {
		l.budget.Release(-delta)
	}
	return out, nil
}

// Release implements Allocator.
func (l *Limited) Release(buf []byte) error {
	if err := l.inner.Release(buf); err != nil {
		return err
	}
	l.budget.Release(int64(len(buf)))
	return nil
}

// Usage returns the bytes currently held through this allocator.
func (l *Limited) Usage() int64 { return l.budget.Usage() }

// Peak returns the highest usage observed.
func (l *Limited) Peak() int64 { return l.budget.Peak() }

// Limit returns the configured limit (0 if unlimited).
func (l *Limited) Limit() int64 { return l.budget.Limit() }
