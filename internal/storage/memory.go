package storage

import (
	"errors"
	"sort"

	"github.com/julianstephens/checkin/internal/constants"
)

// MemoryStore is a process-local Provider. ReadErr and WriteErr, when set,
// are returned from GetItem and SetItem to simulate a failing backend.
type MemoryStore struct {
	items    map[string]string
	loaded   bool
	ReadErr  error
	WriteErr error
}

// ErrQuotaExceeded is a canned write failure for simulating a full backend.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) Init() error {
	s.loaded = true
	return nil
}

func (s *MemoryStore) Load() error {
	s.loaded = true
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetItem(key string) (string, bool, error) {
	if !s.loaded {
		return "", false, ErrNotLoaded
	}
	if s.ReadErr != nil {
		return "", false, s.ReadErr
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryStore) SetItem(key, value string) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.items[key] = value
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) GetConfigPath() string { return constants.StorageMemory }
