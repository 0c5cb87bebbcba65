// Package history holds the ordered log of calculations and the
// persistence contract for its backing store.
package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/colonyops/tally/internal/core/calc"
)

var (
	// ErrIndexOutOfRange is returned by Delete when the target index is
	// outside the current history bounds.
	ErrIndexOutOfRange = errors.New("calculation index out of range")

	// ErrNothingToSave is returned by Save when the history is empty.
	// It signals a user-visible no-op, not a failure; no file write
	// happens.
	ErrNothingToSave = errors.New("no calculations in history to save")

	// ErrNoFile is returned by a Store's Read when the backing file
	// does not exist.
	ErrNoFile = errors.New("history file does not exist")

	// ErrNoRecords is returned by a Store's Read when the backing file
	// exists but holds no records.
	ErrNoRecords = errors.New("history file has no records")
)

// Store persists the full history as a flat record file. Write
// replaces the previous contents wholesale.
type Store interface {
	Write(calcs []calc.Calculation) error
	Read() ([]calc.Calculation, error)
}

// History is the ordered, process-lifetime log of calculations.
// Insertion order is chronological order; indices are stable only
// between mutations, deleting shifts later entries down. History owns
// the long-term references to stored calculations and delegates
// durability to its Store.
type History struct {
	mu      sync.Mutex
	entries []calc.Calculation
	store   Store
}

// New creates an empty history backed by store.
func New(store Store) *History {
	return &History{store: store}
}

// Add appends c to the end of the log. There is no capacity bound and
// no persistence; additions become durable only through Save.
func (h *History) Add(c calc.Calculation) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, c)
}

// All returns a copy of the log in insertion order.
func (h *History) All() []calc.Calculation {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]calc.Calculation, len(h.entries))
	copy(out, h.entries)
	return out
}

// Latest returns the most recent calculation, or false when the log is
// empty.
func (h *History) Latest() (calc.Calculation, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return calc.Calculation{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of recorded calculations.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}

// Clear empties the log unconditionally. The backing file is not
// touched.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
}

// Delete removes the calculation at zero-based index i and immediately
// writes the remaining entries through to the store: deletions are
// durable right away, additions are not. Out-of-range indices return
// ErrIndexOutOfRange and leave the log unchanged.
func (h *History) Delete(i int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i < 0 || i >= len(h.entries) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	if err := h.store.Write(h.entries); err != nil {
		return fmt.Errorf("persist history after delete: %w", err)
	}
	return nil
}

// Save writes all entries through the store, replacing the file
// wholesale. An empty history returns ErrNothingToSave without
// touching the file.
func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return ErrNothingToSave
	}
	return h.store.Write(h.entries)
}

// Load replaces the in-memory log with the store's contents, possibly
// with an empty log. On any store error (ErrNoFile, ErrNoRecords, or a
// read/parse failure) the in-memory log is left untouched and the
// error is returned for the caller to map to a user-facing outcome.
func (h *History) Load() error {
	entries, err := h.store.Read()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = entries
	return nil
}
