package store

import (
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore keeps encoded values in memory. Used as the fallback when no
// file is configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	codec   Codec
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		codec:   JSON,
		entries: make(map[string][]byte),
	}
}

func (m *MemoryStore) Load(key string, v any) error {
	m.mu.RLock()
	data, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return errors.Wrapf(ErrNotFound, "load %q", key)
	}
	if err := m.codec.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %q", key)
	}
	return nil
}

func (m *MemoryStore) Save(key string, v any) error {
	data, err := m.codec.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
	return nil
}

// SetRaw stores already-encoded bytes under key
func (m *MemoryStore) SetRaw(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
}
