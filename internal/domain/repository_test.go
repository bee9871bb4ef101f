package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// versionedStore mimics a snapshot backend: every save bumps the version.
type versionedStore struct {
	items   []item
	version int64
}

func (s *versionedStore) GetAll(context.Context) ([]item, error) {
	return append([]item(nil), s.items...), nil
}

func (s *versionedStore) GetByID(_ context.Context, id int64) (item, bool, error) {
	it, ok := FindByID(s.items, id)
	return it, ok, nil
}

func (s *versionedStore) SaveAll(ctx context.Context, items []item) error {
	return s.SaveAllIfVersion(ctx, items, s.version)
}

func (s *versionedStore) GetAllVersioned(ctx context.Context) ([]item, int64, error) {
	items, err := s.GetAll(ctx)
	return items, s.version, err
}

func (s *versionedStore) SaveAllIfVersion(_ context.Context, items []item, version int64) error {
	if version != s.version {
		return NewConflictError("items were modified by another writer")
	}
	s.items = append([]item(nil), items...)
	s.version++
	return nil
}

type plainStore struct{ items []item }

func (s *plainStore) GetAll(context.Context) ([]item, error) { return s.items, nil }
func (s *plainStore) GetByID(_ context.Context, id int64) (item, bool, error) {
	it, ok := FindByID(s.items, id)
	return it, ok, nil
}
func (s *plainStore) SaveAll(_ context.Context, items []item) error {
	s.items = items
	return nil
}

func TestLoadForUpdate_StaleWriteConflicts(t *testing.T) {
	ctx := context.Background()
	store := &versionedStore{}

	items, save, err := LoadForUpdate[item](ctx, store)
	require.NoError(t, err)
	assert.Empty(t, items)

	// another writer commits, then unrelated reads happen before the stale save
	require.NoError(t, store.SaveAll(ctx, []item{{id: 1}}))
	_, _, err = store.GetByID(ctx, 1)
	require.NoError(t, err)
	_, err = store.GetAll(ctx)
	require.NoError(t, err)
	_, _, err = LoadForUpdate[item](ctx, store)
	require.NoError(t, err)

	err = save(ctx, []item{{id: 2}})
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, []item{{id: 1}}, store.items)

	items, save, err = LoadForUpdate[item](ctx, store)
	require.NoError(t, err)
	require.NoError(t, save(ctx, append(items, item{id: 2})))
	assert.Equal(t, []item{{id: 1}, {id: 2}}, store.items)
}

func TestLoadForUpdate_PlainRepositorySavesUnconditionally(t *testing.T) {
	ctx := context.Background()
	store := &plainStore{items: []item{{id: 1}}}

	items, save, err := LoadForUpdate[item](ctx, store)
	require.NoError(t, err)
	store.items = []item{{id: 5}}

	require.NoError(t, save(ctx, append(items, item{id: 2})))
	assert.Equal(t, []item{{id: 1}, {id: 2}}, store.items)
}
