package compare

import (
	"slices"
	"sync"
)

// DefaultCap is the number of properties a visitor can compare side by
// side unless configured otherwise.
const DefaultCap = 2

// AddResult reports the outcome of Set.Add.
type AddResult string

const (
	// Added means the id is now part of the selection (including the
	// idempotent case where it already was).
	Added AddResult = "added"
	// LimitReached means the selection is full and the id was not added.
	// Callers are expected to offer a replace flow.
	LimitReached AddResult = "limit_reached"
)

// Set is a bounded, ordered selection of property IDs backing the
// "compare" feature. Insertion order is display order,
// duplicates are never stored, and the size never exceeds the cap.
//
// All operations are total: invalid or absent ids are no-ops rather
// than errors. Every effective mutation notifies subscribers with a
// snapshot of the new selection.
//
// Set is safe for concurrent use. Views must never hold or mutate the
// underlying slice directly; Items returns a copy.
type Set struct {
	mu    sync.Mutex
	cap   int
	items []uint
	subs  []func(items []uint)
}

// NewSet creates an empty Set with the given capacity.
// A capacity below 1 falls back to DefaultCap.
func NewSet(capacity int) *Set {
	if capacity < 1 {
		capacity = DefaultCap
	}
	return &Set{cap: capacity}
}

// Restore creates a Set pre-populated with items, dropping duplicates
// and truncating to capacity while preserving order. Used to rebuild a
// selection from a persisted session.
func Restore(capacity int, items []uint) *Set {
	s := NewSet(capacity)
	for _, id := range items {
		if len(s.items) == s.cap {
			break
		}
		if id == 0 || slices.Contains(s.items, id) {
			continue
		}
		s.items = append(s.items, id)
	}
	return s
}

// Cap returns the maximum selection size.
func (s *Set) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cap
}

// Len returns the current selection size.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsSelected reports whether id is part of the selection.
func (s *Set) IsSelected(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.items, id)
}

// Items returns the selection in insertion order. The returned slice is
// a copy and may be retained by the caller.
func (s *Set) Items() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Add appends id to the selection. Re-adding a selected id is an
// idempotent no-op that still reports Added. When the selection is full
// and id is new, nothing changes and LimitReached is returned.
func (s *Set) Add(id uint) AddResult {
	s.mu.Lock()

	if id == 0 || slices.Contains(s.items, id) {
		s.mu.Unlock()
		return Added
	}
	if len(s.items) >= s.cap {
		s.mu.Unlock()
		return LimitReached
	}

	s.items = append(s.items, id)
	snapshot := slices.Clone(s.items)
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
	return Added
}

// Remove deletes id from the selection; absent ids are a no-op.
func (s *Set) Remove(id uint) {
	s.mu.Lock()

	idx := slices.Index(s.items, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	snapshot := slices.Clone(s.items)
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.mu.Lock()

	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}

	s.items = s.items[:0]
	subs := s.subs
	s.mu.Unlock()

	notify(subs, []uint{})
}

// Replace atomically substitutes oldID with newID, keeping its position.
// When oldID is absent nothing happens. When newID is already selected
// elsewhere, Replace degrades to Remove(oldID) so the no-duplicates
// invariant holds.
func (s *Set) Replace(oldID, newID uint) {
	s.mu.Lock()

	idx := slices.Index(s.items, oldID)
	if idx < 0 || oldID == newID {
		s.mu.Unlock()
		return
	}

	if newID == 0 || slices.Contains(s.items, newID) {
		s.items = slices.Delete(s.items, idx, idx+1)
	} else {
		s.items[idx] = newID
	}
	snapshot := slices.Clone(s.items)
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Subscribe registers fn to be called with a snapshot of the selection
// after every effective mutation. Subscribers are invoked outside the
// Set's lock, so they may call back into the Set.
func (s *Set) Subscribe(fn func(items []uint)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func notify(subs []func(items []uint), snapshot []uint) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
