// Package file persists inventories as an indented JSON object on disk.
// encoding/json writes map keys in sorted order, so saved files are
// deterministic and diff cleanly.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"invtrack/pkg/inventory"
)

// Compile-time check that Store implements inventory.Store.
var _ inventory.Store = (*Store)(nil)

// StorageError reports a failed load or save against the backing file.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store reads and writes inventories at a fixed path.
type Store struct {
	path string

	// MustExist makes Load fail when the file is missing instead of
	// returning an empty inventory. The error matches fs.ErrNotExist.
	MustExist bool
}

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load parses the backing file into an inventory. A missing file yields an
// empty inventory unless MustExist is set. The file handle is released on
// every exit path.
func (s *Store) Load(ctx context.Context) (*inventory.Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !s.MustExist {
			return inventory.New(), nil
		}
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	var items map[string]int
	dec := json.NewDecoder(f)
	if err := dec.Decode(&items); err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	// A valid file holds exactly one JSON object.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after inventory object")
		}
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	inv, err := inventory.FromItems(items)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	return inv, nil
}

// Save writes the inventory as indented JSON. The handle is closed on every
// exit path; write and close failures surface as storage errors.
func (s *Store) Save(ctx context.Context, inv *inventory.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(inv.Items()); err != nil {
		f.Close()
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}
