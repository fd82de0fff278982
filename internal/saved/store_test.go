package saved

import (
	"testing"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/logging"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

func TestToggleInvolution(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	store := New(backend, logging.Nop())
	store.Load()

	if store.IsSaved("blt") {
		t.Fatal("fresh store should be empty")
	}

	if err := store.Toggle("blt"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !store.IsSaved("blt") {
		t.Fatal("id not saved after first toggle")
	}

	if err := store.Toggle("blt"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if store.IsSaved("blt") {
		t.Fatal("toggle twice must restore original membership")
	}
	if len(store.IDs()) != 0 {
		t.Fatalf("expected empty set, got %v", store.IDs())
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	store := New(backend, logging.Nop())
	store.Load()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}
	store.Toggle("b") // remove the middle entry

	ids := store.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Fatalf("unexpected order: %v", ids)
	}
}

func TestTogglePersistsAcrossReload(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	store := New(backend, logging.Nop())
	store.Load()
	store.Toggle("eggs-rice-soysauce")

	fresh := New(backend, logging.Nop())
	ids, status := fresh.Load()
	if status != domain.Loaded {
		t.Fatalf("expected loaded status, got %v", status)
	}
	if len(ids) != 1 || ids[0] != "eggs-rice-soysauce" {
		t.Fatalf("unexpected ids after reload: %v", ids)
	}
}

func TestLoadCorruptDataStartsEmpty(t *testing.T) {
	backend := storage.NewMemoryBackend(logging.Nop())
	backend.Write(storage.KeySavedRecipes, []byte(`{"oops":`))
	store := New(backend, logging.Nop())

	ids, status := store.Load()
	if status != domain.LoadRecovered {
		t.Fatalf("expected recovered status, got %v", status)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty set, got %v", ids)
	}
}
