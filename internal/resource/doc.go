// Package resource implements a byte budget for memory providers.
//
// A Budget is fail-fast: Acquire never blocks and returns
// ErrMemoryLimitExceeded when the reservation would cross the limit.
//
//	b := resource.NewBudget(1 << 20) // 1 MiB
//
//	if err := b.Acquire(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer b.Release(4096)
//
// # Thread Safety
//
// All Budget methods are safe for concurrent use. The hard limit is a
// weighted semaphore; usage and peak are atomic counters.
//
// # Nil Safety
//
// All methods handle a nil Budget gracefully - they become no-ops.
package resource
