package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/logging"
)

func TestMemoryBackendRoundTrip(t *testing.T) {
	b := NewMemoryBackend(logging.Nop())

	// Missing key.
	if _, err := b.Read("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Write then read.
	if err := b.Write(KeyPreferences, []byte(`{"onboarded":true}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := b.Read(KeyPreferences)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"onboarded":true}` {
		t.Fatalf("unexpected data: %s", data)
	}

	// Delete, then the key is gone.
	if err := b.Delete(KeyPreferences); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := b.Read(KeyPreferences); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is a no-op.
	if err := b.Delete("never-written"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir, logging.Nop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := b.Read(KeyShoppingList); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	payload := []byte(`{"items":[]}`)
	if err := b.Write(KeyShoppingList, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	// The record lands as <key>.json in the data dir.
	if _, err := os.Stat(filepath.Join(dir, KeyShoppingList+".json")); err != nil {
		t.Fatalf("expected record file: %v", err)
	}

	data, err := b.Read(KeyShoppingList)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("round trip mismatch: %s", data)
	}

	// Overwrite wins.
	if err := b.Write(KeyShoppingList, []byte(`{"items":[{"ingredient":"x"}]}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _ = b.Read(KeyShoppingList)
	if string(data) == string(payload) {
		t.Fatal("overwrite did not replace record")
	}

	if err := b.Delete(KeyShoppingList); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := b.Read(KeyShoppingList); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty data dir, found %d entries", len(entries))
	}
}
