package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when no record exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the persistence surface for cart records: a JSON payload stored
// under one fixed key per session. Callers treat Load failures as an empty
// cart and Save failures as best-effort.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// Memory keeps cart records for the process lifetime. It backs the default
// driver and test setups.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (m *Memory) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.data[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
