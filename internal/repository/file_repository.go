package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// FileStorage reads and writes one JSON document on disk.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage for path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the file location.
func (s *FileStorage) Path() string { return s.path }

// Load returns the file contents, or nil when the file does not exist yet.
func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}

// Save writes data through a temporary file and a rename, so readers never see a partial file.
func (s *FileStorage) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// FileRepository stores a collection as a JSON array in a single file.
type FileRepository[T domain.Entity] struct {
	mu      sync.RWMutex
	storage *FileStorage
}

// NewFileRepository creates a FileRepository over storage.
func NewFileRepository[T domain.Entity](storage *FileStorage) *FileRepository[T] {
	return &FileRepository[T]{storage: storage}
}

// GetAll decodes the whole file. A missing or empty file is an empty collection;
// malformed content is an error.
func (r *FileRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// GetByID returns the first record with a matching id.
func (r *FileRepository[T]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, err := r.load()
	if err != nil {
		var zero T
		return zero, false, err
	}
	item, ok := domain.FindByID(items, id)
	return item, ok, nil
}

// SaveAll overwrites the file with items.
func (r *FileRepository[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.storage.Path(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storage.Save(data)
}

func (r *FileRepository[T]) load() ([]T, error) {
	data, err := r.storage.Load()
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.storage.Path(), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
