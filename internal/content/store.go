// Package content implements the in-memory content store behind the site:
// seeded at startup, queried by the HTTP handlers, mutated in place by
// update/delete. State lives only for the process lifetime; a restart resets
// everything to the seed set. The store is not a source of truth, only a
// demo-scale cache of static content.
package content

import (
	"sync"
	"time"

	"folio/internal/model"
)

// Store maps content id to item and remembers insertion order. All methods
// are safe for concurrent use; reads hand out clones so callers never alias
// store state.
type Store struct {
	mu     sync.RWMutex
	items  map[string]model.Item
	order  []string
	seeded bool
}

func NewStore() *Store {
	return &Store{items: make(map[string]model.Item)}
}

// UpdateOptions tweaks Update behavior.
type UpdateOptions struct {
	// SkipValidation applies the patch without running the variant's
	// field checks.
	SkipValidation bool
	// SkipTimestamp leaves updated_at/updated_by untouched.
	SkipTimestamp bool
}

// Put inserts a new item. The id must not already be taken.
func (s *Store) Put(item model.Item) error {
	meta := item.Meta()
	if meta.ID == "" {
		return invalid([]string{"id is required"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[meta.ID]; exists {
		return invalid([]string{"content '" + meta.ID + "' already exists"})
	}
	s.items[meta.ID] = item
	s.order = append(s.order, meta.ID)
	return nil
}

// Get returns a copy of the item for id.
func (s *Store) Get(id string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}
	return item.Clone(), nil
}

// Update merges the patch into the stored item and stamps the author and
// update time. On a validation failure the store is left untouched.
func (s *Store) Update(id string, patch model.Patch, author string, opts UpdateOptions) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}

	// Patch a clone first so a failed validation never leaves a
	// half-updated item behind.
	updated := current.Clone()
	updated.Apply(patch)
	if !opts.SkipTimestamp {
		updated.Meta().UpdatedAt = time.Now()
		updated.Meta().UpdatedBy = author
	}

	if !opts.SkipValidation {
		if errs := updated.Validate(); len(errs) > 0 {
			return nil, invalid(errs)
		}
	}

	s.items[id] = updated
	return updated.Clone(), nil
}

// Delete removes the item for id.
func (s *Store) Delete(id, author string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return notFound(id)
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports how many items the store holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// all returns clones of every item in store order. Callers must not hold
// the lock.
func (s *Store) all() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out
}
