package storage

import (
	"sync"

	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/domain"
)

// Compile-time interface check.
var _ domain.Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps records in a map. Safe for concurrent access.
// Used by tests and ephemeral runs; nothing survives the process.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
	log     *zap.SugaredLogger
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend(log *zap.SugaredLogger) *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string][]byte),
		log:     log,
	}
}

// Read returns the record stored under key.
func (b *MemoryBackend) Read(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores data under key, overwriting any previous record.
func (b *MemoryBackend) Write(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.log.Debugw("writing record", "key", key, "bytes", len(data))
	stored := make([]byte, len(data))
	copy(stored, data)
	b.records[key] = stored
	return nil
}

// Delete removes the record under key. Deleting a missing key is a no-op.
func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.records, key)
	return nil
}
