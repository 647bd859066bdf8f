package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	jsonTmpSuffix = ".tmp"
	jsonFileMode  = 0600
)

type jsonDocument struct {
	Version   int               `json:"version"`
	UpdatedAt string            `json:"updated_at,omitempty"`
	Items     map[string]string `json:"items"`
}

// JSONStore keeps every item in a single JSON file, rewritten in full on each
// SetItem through a temp file and rename.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Keep existing data; Init is idempotent
	if _, err := os.Stat(s.path); err == nil {
		return s.read()
	}

	s.doc = &jsonDocument{Version: 1, Items: make(map[string]string)}
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}
	return s.read()
}

func (s *JSONStore) read() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &jsonDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Items == nil {
		doc.Items = make(map[string]string)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	s.doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + jsonTmpSuffix
	if err := os.WriteFile(tmp, data, jsonFileMode); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetItem(key string) (string, bool, error) {
	if s.doc == nil {
		return "", false, ErrNotLoaded
	}
	v, ok := s.doc.Items[key]
	return v, ok, nil
}

func (s *JSONStore) SetItem(key, value string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	prev, had := s.doc.Items[key]
	s.doc.Items[key] = value
	if err := s.save(); err != nil {
		// Keep memory consistent with disk
		if had {
			s.doc.Items[key] = prev
		} else {
			delete(s.doc.Items, key)
		}
		return err
	}
	return nil
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.doc.Items))
	for k := range s.doc.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) FilePath() string {
	return s.path
}

// VerifyJSONFile checks that path holds a readable JSON store document.
func VerifyJSONFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("not a JSON store: %w", err)
	}
	if doc.Items == nil {
		return fmt.Errorf("not a JSON store: missing items")
	}
	return nil
}
