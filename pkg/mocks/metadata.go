package mocks

import (
	"context"
	"sync"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// MetadataStore is a mock implementation of ports.MetadataStore backed by an
// in-memory key-value map.
type MetadataStore struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc   func(ctx context.Context, key string) (string, error)
	CloseFunc func() error

	// Recorded calls for verification
	GetCalls    []string
	CloseCalled bool
}

// NewMetadataStore creates a new mock MetadataStore.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{values: make(map[string]string)}
}

// Set seeds a value (for test setup).
func (m *MetadataStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MetadataStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, key)
	m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.values[key]; ok {
		return value, nil
	}
	return "", ports.ErrMetadataNotFound
}

func (m *MetadataStore) Close() error {
	m.CloseCalled = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.MetadataStore = (*MetadataStore)(nil)
