// Package saved implements the durable saved-recipe set: an ordered id
// list with set semantics.
package saved

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

// Store is the saved-recipe set. Insertion order is preserved for display.
// Safe for concurrent use; every toggle persists before returning.
type Store struct {
	mu      sync.RWMutex
	backend domain.Backend
	log     *zap.SugaredLogger
	ids     []string
}

// New creates a saved-recipe store over the given backend.
func New(backend domain.Backend, log *zap.SugaredLogger) *Store {
	return &Store{backend: backend, log: log}
}

// Load reads the durable id list. Missing or corrupt data yields an empty
// set; no error is ever surfaced.
func (s *Store) Load() ([]string, domain.LoadStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Read(storage.KeySavedRecipes)
	if errors.Is(err, domain.ErrNotFound) {
		s.ids = nil
		return nil, domain.LoadFirstRun
	}
	if err != nil {
		s.log.Warnw("saved recipes unreadable, starting empty", "error", err)
		s.ids = nil
		return nil, domain.LoadRecovered
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		s.log.Warnw("saved recipes corrupt, starting empty", "error", err)
		s.ids = nil
		return nil, domain.LoadRecovered
	}
	s.ids = ids
	return s.copyIDs(), domain.Loaded
}

// Toggle adds the id if absent, removes it if present, and persists.
// Applying it twice returns the set to its original membership.
func (s *Store) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.ids)+1)
	removed := false
	for _, existing := range s.ids {
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, id)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding saved recipes: %w", err)
	}
	if err := s.backend.Write(storage.KeySavedRecipes, data); err != nil {
		return fmt.Errorf("persisting saved recipes: %w", err)
	}
	s.ids = next
	s.log.Debugw("saved recipe toggled", "id", id, "saved", !removed)
	return nil
}

// IsSaved reports membership against current in-memory state.
func (s *Store) IsSaved(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the saved ids in insertion order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyIDs()
}

func (s *Store) copyIDs() []string {
	if len(s.ids) == 0 {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
