package domain

import "context"

// Entity is a record with an integer identity, unique within its collection.
type Entity interface {
	EntityID() int64
}

// Repository is the whole-collection persistence contract shared by every entity type.
//
// GetAll returns a copy of the stored records in storage order. GetByID returns the
// first record with a matching id and false when there is none; absence is never an
// error. SaveAll replaces the stored collection with a copy of items, keeping order.
type Repository[T Entity] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, bool, error)
	SaveAll(ctx context.Context, items []T) error
}

// VersionedRepository is a Repository whose writes can be made conditional on
// the version observed by an earlier read.
type VersionedRepository[T Entity] interface {
	Repository[T]
	GetAllVersioned(ctx context.Context) ([]T, int64, error)
	// SaveAllIfVersion fails with a ConflictError when the stored version is no
	// longer version.
	SaveAllIfVersion(ctx context.Context, items []T, version int64) error
}

// SaveFunc persists a whole collection.
type SaveFunc[T Entity] func(ctx context.Context, items []T) error

// LoadForUpdate reads the collection at the start of a read-modify-write cycle.
// On a VersionedRepository the returned save only succeeds while the collection
// is still at the version of this read; other repositories save unconditionally.
func LoadForUpdate[T Entity](ctx context.Context, repo Repository[T]) ([]T, SaveFunc[T], error) {
	if versioned, ok := repo.(VersionedRepository[T]); ok {
		items, version, err := versioned.GetAllVersioned(ctx)
		if err != nil {
			return nil, nil, err
		}
		save := func(ctx context.Context, next []T) error {
			return versioned.SaveAllIfVersion(ctx, next, version)
		}
		return items, save, nil
	}

	items, err := repo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return items, repo.SaveAll, nil
}

// NextID returns max(existing id) + 1, or 1 for an empty collection.
func NextID[T Entity](items []T) int64 {
	var maxID int64
	for _, item := range items {
		if id := item.EntityID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// FindByID returns the first item in items whose id matches.
func FindByID[T Entity](items []T, id int64) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// RemoveByID returns items without the records matching id and whether anything was removed.
func RemoveByID[T Entity](items []T, id int64) ([]T, bool) {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	return kept, len(kept) != len(items)
}

// ReplaceByID overwrites the first record whose id matches item's id.
func ReplaceByID[T Entity](items []T, item T) bool {
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
			return true
		}
	}
	return false
}
