package repository

import (
	"context"
	"sync"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// MemoryRepository keeps a collection in process memory. It backs tests and the
// "memory" storage driver.
type MemoryRepository[T domain.Entity] struct {
	mu    sync.RWMutex
	items []T
}

// NewMemoryRepository builds a repository seeded with a copy of initial.
func NewMemoryRepository[T domain.Entity](initial ...T) *MemoryRepository[T] {
	return &MemoryRepository[T]{items: cloneItems(initial)}
}

// GetAll returns a copy of every stored record in storage order.
func (r *MemoryRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneItems(r.items), nil
}

// GetByID returns the first record with a matching id.
func (r *MemoryRepository[T]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := domain.FindByID(r.items, id)
	return item, ok, nil
}

// SaveAll replaces the stored collection with a copy of items.
func (r *MemoryRepository[T]) SaveAll(ctx context.Context, items []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = cloneItems(items)
	return nil
}

// Entity records are flat value structs, so copying the slice copies the records.
func cloneItems[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
