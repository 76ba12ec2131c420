package experiments

import (
	"context"
	"encoding/json"
	"os"
	"sync"
)

// Store is the key-value persistence behind experiment assignments. It is
// injected so the assigner has no hidden process-wide state: tests use the
// in-memory store, local runs the file store, production the Redis store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStore keeps assignments in a single JSON file. A missing or corrupted
// file is treated as empty, so damaged client-side storage just re-buckets.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
	}
	return s
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
