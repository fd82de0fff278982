// Package prefs implements the durable preference store: the onboarding
// flag plus the three user preference fields.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

// Store holds the singleton Preferences record. Every mutation persists
// synchronously before returning. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	backend domain.Backend
	log     *zap.SugaredLogger
	current domain.Preferences
}

// New creates a preference store over the given backend. Call Load before
// reading Current.
func New(backend domain.Backend, log *zap.SugaredLogger) *Store {
	return &Store{
		backend: backend,
		log:     log,
		current: domain.DefaultPreferences(),
	}
}

// storedPrefs mirrors the durable JSON with optional fields, so a record
// written by an older or newer schema merges field-by-field instead of
// failing wholesale.
type storedPrefs struct {
	Onboarded      *bool           `json:"onboarded"`
	Dietary        *domain.Dietary `json:"dietary"`
	HouseholdSize  *int            `json:"householdSize"`
	CookingComfort *domain.Comfort `json:"cookingComfort"`
}

// Load reads the durable record. Parse failures are never surfaced: the
// caller always gets usable preferences, with the status tag reporting
// whether they came from disk, from first-run defaults, or from recovery.
func (s *Store) Load() (domain.Preferences, domain.LoadStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := domain.DefaultPreferences()

	data, err := s.backend.Read(storage.KeyPreferences)
	if errors.Is(err, domain.ErrNotFound) {
		s.current = prefs
		return prefs, domain.LoadFirstRun
	}
	if err != nil {
		s.log.Warnw("preferences unreadable, using defaults", "error", err)
		s.current = prefs
		return prefs, domain.LoadRecovered
	}

	var stored storedPrefs
	if err := json.Unmarshal(data, &stored); err != nil {
		s.log.Warnw("preferences corrupt, using defaults", "error", err)
		s.current = prefs
		return prefs, domain.LoadRecovered
	}

	// Merge field-by-field; invalid values keep their default.
	if stored.Onboarded != nil {
		prefs.Onboarded = *stored.Onboarded
	}
	if stored.Dietary != nil && stored.Dietary.Valid() {
		prefs.Dietary = *stored.Dietary
	}
	if stored.HouseholdSize != nil && *stored.HouseholdSize >= domain.HouseholdMin && *stored.HouseholdSize <= domain.HouseholdMax {
		prefs.HouseholdSize = *stored.HouseholdSize
	}
	if stored.CookingComfort != nil && stored.CookingComfort.Valid() {
		prefs.CookingComfort = *stored.CookingComfort
	}

	s.current = prefs
	s.log.Debugw("preferences loaded", "onboarded", prefs.Onboarded, "dietary", prefs.Dietary)
	return prefs, domain.Loaded
}

// Current returns the in-memory preferences.
func (s *Store) Current() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// CompleteOnboarding merges the patch onto current state, forces the
// onboarded flag, persists, and returns the new state.
func (s *Store) CompleteOnboarding(patch domain.PreferencesPatch) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	if patch.Dietary != nil && patch.Dietary.Valid() {
		next.Dietary = *patch.Dietary
	}
	if patch.HouseholdSize != nil && *patch.HouseholdSize >= domain.HouseholdMin && *patch.HouseholdSize <= domain.HouseholdMax {
		next.HouseholdSize = *patch.HouseholdSize
	}
	if patch.CookingComfort != nil && patch.CookingComfort.Valid() {
		next.CookingComfort = *patch.CookingComfort
	}
	next.Onboarded = true

	if err := s.persist(next); err != nil {
		return s.current, err
	}
	s.current = next
	s.log.Infow("onboarding complete", "dietary", next.Dietary, "household", next.HouseholdSize, "comfort", next.CookingComfort)
	return next, nil
}

// Reset overwrites both in-memory and durable state with defaults.
func (s *Store) Reset() (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := domain.DefaultPreferences()
	if err := s.persist(defaults); err != nil {
		return s.current, err
	}
	s.current = defaults
	s.log.Info("preferences reset to defaults")
	return defaults, nil
}

// ClearAll is the factory wipe: it deletes every durable key this
// application owns, including the saved-recipe and shopping-list records
// and the legacy checklist. The wipe is deliberately not transactional; a
// failure partway leaves a mixed state, which is accepted for this data.
// In-memory preferences reset to defaults; other stores are expected to be
// re-created by the caller.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, key := range storage.AllKeys {
		if err := s.backend.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("deleting %s: %w", key, err))
		}
	}
	s.current = domain.DefaultPreferences()
	s.log.Info("all app data cleared")
	return errors.Join(errs...)
}

func (s *Store) persist(p domain.Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := s.backend.Write(storage.KeyPreferences, data); err != nil {
		return fmt.Errorf("persisting preferences: %w", err)
	}
	return nil
}
