// Package orderlock serializes operations that mutate the same order.
// Every lifecycle transition (bid, window close, selection, confirmation,
// cancellation) locks the order first, so two racing operations cannot both
// observe the same starting state. Operations on different orders never
// contend: each order gets its own mutex.
package orderlock

import (
	"sync"

	"freighthub/internal/core/domain/model/kernel"
)

// Registry holds one mutex per order, created lazily on first use.
// Mutexes are never removed; the per-order footprint is a single mutex
// and orders are bounded by business volume.
type Registry struct {
	mutexes sync.Map // kernel.UUID -> *sync.Mutex
}

// NewRegistry creates an empty lock registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lock acquires the mutex for the given order, blocking until it is free.
// The returned function releases it and must be called exactly once,
// typically via defer.
func (r *Registry) Lock(orderID kernel.UUID) func() {
	value, _ := r.mutexes.LoadOrStore(orderID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
