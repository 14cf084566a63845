package session

import "sync"

// Store defines the session-scoped key/value contract. Implementations hold
// values only for the current session and are cleared when it ends.
type Store interface {
	// Get retrieves the value for key, with ok reporting whether it was present.
	Get(key string) (value string, ok bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string)

	// Remove deletes the value for key. Removing an absent key is a no-op.
	Remove(key string)
}

// MemoryStore is an in-memory Store implementation. It is safe for
// concurrent use so HTTP handlers can share it.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

// Remove deletes the value for key.
func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}
