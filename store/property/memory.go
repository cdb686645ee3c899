package property

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pandodao/spl-minter/core"
)

// memoryStore keeps encoded values so every Get hands out a fresh copy.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() core.PropertyStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string, value any) error {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	return json.Unmarshal(raw, value)
}

func (s *memoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()

	return nil
}
