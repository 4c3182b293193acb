// Package memory implements a transient inventory store.
package memory

import (
	"context"
	"sync"

	"invtrack/pkg/inventory"
)

// Compile-time check that Store implements inventory.Store.
var _ inventory.Store = (*Store)(nil)

// Store keeps the last saved snapshot in memory. It backs tests and
// transient shell sessions; nothing survives the process.
type Store struct {
	mu    sync.Mutex
	items map[string]int
}

// New creates an empty transient store.
func New() *Store {
	return &Store{}
}

// Load rebuilds an inventory from the last saved snapshot. Loads before any
// save yield an empty inventory.
func (s *Store) Load(ctx context.Context) (*inventory.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return inventory.New(), nil
	}
	return inventory.FromItems(s.items)
}

// Save snapshots the inventory.
func (s *Store) Save(ctx context.Context, inv *inventory.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = inv.Items()
	return nil
}
