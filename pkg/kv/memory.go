package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// memoryStore keeps everything in process. It is the fallback when no
// persistence medium is available: the API stays functional, nothing survives
// a restart.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	payload, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = payload
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryStore) Close() error {
	return nil
}
