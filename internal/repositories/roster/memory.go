package roster

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// MemoryStore keeps values in process memory. It backs the primary tier when
// no Redis server is configured and stands in for either tier in tests.
type MemoryStore struct {
	mu            sync.RWMutex
	data          map[string]string
	maxValueBytes int
}

// NewMemoryStore creates an empty store. A positive maxValueBytes rejects larger values.
func NewMemoryStore(maxValueBytes int) *MemoryStore {
	return &MemoryStore{
		data:          make(map[string]string),
		maxValueBytes: maxValueBytes,
	}
}

// Get returns the value stored under key
func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeCanceled, "memory store get")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return "", errors.NotFoundf("key %s not found", key)
	}
	return value, nil
}

// Set stores value under key
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "memory store set")
	}
	if m.maxValueBytes > 0 && len(value) > m.maxValueBytes {
		return errors.ResourceExhaustedf("value for %s is %d bytes, quota is %d", key, len(value), m.maxValueBytes)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

// Delete removes key
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "memory store delete")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Clear drops every key, as a browser does when it evicts site storage
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]string)
}
