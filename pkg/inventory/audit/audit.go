// Package audit records inventory operations as timestamped journal entries.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single recorded operation.
type Entry struct {
	ID      uuid.UUID
	Time    time.Time
	Message string
}

// Journal collects the entries produced by inventory operations. Operations
// that are not handed a journal allocate their own, so entries are never
// shared between callers that did not ask for it.
type Journal struct {
	entries []Entry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends a timestamped entry and returns it.
func (j *Journal) Record(message string) Entry {
	e := Entry{ID: uuid.New(), Time: time.Now(), Message: message}
	j.entries = append(j.entries, e)
	return e
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.entries)
}
