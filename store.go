package minimarket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Names of the persisted collections.
const (
	colCategories = "categories"
	colProducts   = "products"
	colSales      = "sales"
	colMovements  = "stockMovements"
)

// Store is the persistence contract: a durable mapping from a collection
// name to the raw JSON array of its records. Read returns nil for a
// collection that has never been written. Write replaces the whole
// collection and must not expose partial writes.
//
// There are no transactions across collections: an operation touching two
// collections performs two sequential writes. On a shared store two
// concurrent read-mutate-write sequences can lose each other's writes
// (last writer wins on the whole collection); a multi-client deployment
// needs per-record keys or a revision counter, neither of which this
// single-user design carries.
type Store interface {
	Read(collection string) ([]byte, error)
	Write(collection string, data []byte) error
}

// DirStore persists each collection as <dir>/<name>.json, a human-readable
// JSON array. The directory is created on first write.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

func (s *DirStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *DirStore) Read(collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read collection file %q: %w", s.path(collection), err)
	}
	return data, nil
}

func (s *DirStore) Write(collection string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	// Write to a temp file then rename, so a crash mid-write never leaves a
	// half-written collection behind.
	tmp, err := os.CreateTemp(s.dir, collection+"-*.json")
	if err != nil {
		return fmt.Errorf("could not create temp file for collection %q: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write collection %q: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temp file for collection %q: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace collection file %q: %w", s.path(collection), err)
	}
	return nil
}

// MemStore is an in-memory Store, used in tests and as a throwaway backend.
type MemStore struct {
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{data: make(map[string][]byte)} }

func (s *MemStore) Read(collection string) ([]byte, error) {
	return s.data[collection], nil
}

func (s *MemStore) Write(collection string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[collection] = cp
	return nil
}

// readAll loads a whole collection. A missing collection is an empty one;
// anything else that goes wrong is a StorageError.
func readAll[T any](s Store, collection string) ([]T, error) {
	data, err := s.Read(collection)
	if err != nil {
		return nil, storageError("read", collection, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, storageError("decode", collection, err)
	}
	return records, nil
}

// writeAll replaces a whole collection.
func writeAll[T any](s Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return storageError("write", collection, err)
	}
	if err := s.Write(collection, data); err != nil {
		return storageError("write", collection, err)
	}
	return nil
}
