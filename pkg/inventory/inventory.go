// Package inventory maintains an item-to-quantity mapping with validated
// mutations.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"invtrack/pkg/inventory/audit"
)

// ErrNotFound indicates the requested item is not in the inventory.
var ErrNotFound = errors.New("item not found")

// ValidationError reports an invalid item name or quantity. It is returned
// before any mutation takes place.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Store defines behavior for persisting inventories.
type Store interface {
	Load(ctx context.Context) (*Inventory, error)
	Save(ctx context.Context, inv *Inventory) error
}

// Inventory maps item names to non-negative quantities. The zero value is not
// usable; use New or FromItems.
type Inventory struct {
	mu    sync.RWMutex
	items map[string]int
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{items: make(map[string]int)}
}

// FromItems creates an inventory from a snapshot, validating every record.
func FromItems(items map[string]int) (*Inventory, error) {
	inv := New()
	for name, qty := range items {
		if err := validateName(name); err != nil {
			return nil, err
		}
		if qty < 0 {
			return nil, &ValidationError{Field: "quantity", Value: qty, Reason: "must not be negative"}
		}
		inv.items[name] = qty
	}
	return inv, nil
}

// Add increments (or initializes) the quantity for name and returns the new
// total. A nil journal makes the call record into a fresh one of its own;
// journals are never shared between calls implicitly.
func (inv *Inventory) Add(name string, qty int, journal *audit.Journal) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	if qty < 0 {
		return 0, &ValidationError{Field: "quantity", Value: qty, Reason: "must not be negative"}
	}
	if journal == nil {
		journal = audit.NewJournal()
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.items[name] += qty
	total := inv.items[name]
	journal.Record(fmt.Sprintf("added %d of %q, total %d", qty, name, total))
	return total, nil
}

// Remove decrements the quantity for name and returns the remainder. Removing
// the exact balance deletes the item. Removing more than is on hand fails, so
// quantities can never go negative.
func (inv *Inventory) Remove(name string, qty int, journal *audit.Journal) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	if qty <= 0 {
		return 0, &ValidationError{Field: "quantity", Value: qty, Reason: "must be positive"}
	}
	if journal == nil {
		journal = audit.NewJournal()
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	have, ok := inv.items[name]
	if !ok {
		return 0, ErrNotFound
	}
	if qty > have {
		return 0, &ValidationError{Field: "quantity", Value: qty, Reason: fmt.Sprintf("only %d on hand", have)}
	}
	rest := have - qty
	if rest == 0 {
		delete(inv.items, name)
		journal.Record(fmt.Sprintf("removed %q (out of stock)", name))
	} else {
		inv.items[name] = rest
		journal.Record(fmt.Sprintf("removed %d of %q, remaining %d", qty, name, rest))
	}
	return rest, nil
}

// Quantity returns the on-hand quantity for name, or 0 when absent.
func (inv *Inventory) Quantity(name string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.items[name]
}

// Low returns the names with quantity below threshold, sorted.
func (inv *Inventory) Low(threshold int) []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	var low []string
	for name, qty := range inv.items {
		if qty < threshold {
			low = append(low, name)
		}
	}
	sort.Strings(low)
	return low
}

// Items returns a copy of the mapping.
func (inv *Inventory) Items() map[string]int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make(map[string]int, len(inv.items))
	for name, qty := range inv.items {
		out[name] = qty
	}
	return out
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "item name", Value: name, Reason: "must not be empty"}
	}
	return nil
}
