package prefs

import (
	"errors"
	"testing"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/logging"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

func ptr[T any](v T) *T { return &v }

func TestLoadFirstRun(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	store := New(backend, logging.Nop())

	got, status := store.Load()
	if status != domain.LoadFirstRun {
		t.Fatalf("expected first-run status, got %v", status)
	}
	if got != domain.DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadCorruptBlobRecoversToDefaults(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	backend.Write(storage.KeyPreferences, []byte("{not json"))
	store := New(backend, logging.Nop())

	got, status := store.Load()
	if status != domain.LoadRecovered {
		t.Fatalf("expected recovered status, got %v", status)
	}
	if got.Onboarded {
		t.Fatal("recovered preferences must have onboarded=false")
	}
	if got != domain.DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadMergesPartialRecord(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	// Old record missing cookingComfort, plus an unknown dietary value.
	backend.Write(storage.KeyPreferences, []byte(`{"onboarded":true,"dietary":"keto","householdSize":3}`))
	store := New(backend, logging.Nop())

	got, status := store.Load()
	if status != domain.Loaded {
		t.Fatalf("expected loaded status, got %v", status)
	}
	if !got.Onboarded {
		t.Fatal("stored onboarded flag lost")
	}
	if got.HouseholdSize != 3 {
		t.Fatalf("stored household size lost, got %d", got.HouseholdSize)
	}
	// Unknown enum falls back to the default; missing field keeps default.
	if got.Dietary != domain.DietNoPreference {
		t.Fatalf("expected default dietary, got %s", got.Dietary)
	}
	if got.CookingComfort != domain.ComfortBeginner {
		t.Fatalf("expected default comfort, got %s", got.CookingComfort)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	store := New(backend, logging.Nop())
	store.Load()

	got, err := store.CompleteOnboarding(domain.PreferencesPatch{
		Dietary:        ptr(domain.DietPescatarian),
		HouseholdSize:  ptr(4),
		CookingComfort: ptr(domain.ComfortComfortable),
	})
	if err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	if !got.Onboarded {
		t.Fatal("onboarded flag not forced")
	}
	if got.Dietary != domain.DietPescatarian || got.HouseholdSize != 4 || got.CookingComfort != domain.ComfortComfortable {
		t.Fatalf("patch not applied: %+v", got)
	}

	// Survives a reload.
	reloaded, status := store.Load()
	if status != domain.Loaded {
		t.Fatalf("expected loaded status, got %v", status)
	}
	if reloaded != got {
		t.Fatalf("reload mismatch: %+v vs %+v", reloaded, got)
	}
}

func TestReset(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	store := New(backend, logging.Nop())
	store.Load()
	store.CompleteOnboarding(domain.PreferencesPatch{Dietary: ptr(domain.DietVegetarian)})

	got, err := store.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got != domain.DefaultPreferences() {
		t.Fatalf("expected defaults after reset, got %+v", got)
	}

	reloaded, _ := store.Load()
	if reloaded != domain.DefaultPreferences() {
		t.Fatalf("reset not persisted: %+v", reloaded)
	}
}

func TestClearAllWipesEveryKey(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	for _, key := range storage.AllKeys {
		backend.Write(key, []byte(`{}`))
	}
	store := New(backend, logging.Nop())
	store.Load()

	if err := store.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	for _, key := range storage.AllKeys {
		if _, err := backend.Read(key); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("key %s survived the wipe (err=%v)", key, err)
		}
	}
	if store.Current() != domain.DefaultPreferences() {
		t.Fatal("in-memory preferences not reset")
	}
}
