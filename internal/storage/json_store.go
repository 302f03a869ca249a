package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	jerrors "github.com/julianstephens/journl/internal/errors"
)

const jsonStoreVersion = 1

type document struct {
	Version     int                        `json:"version"`
	Collections map[string]json.RawMessage `json:"collections"`
}

// JSONStore keeps every collection in a single JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Init creates the file, or loads it when it already exists.
func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.doc = &document{Version: jsonStoreVersion, Collections: map[string]json.RawMessage{}}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("failed to open %s: %w", s.path, jerrors.ErrNotInitialized)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonStoreVersion {
		return fmt.Errorf("storage version (%d) is newer than supported version (%d) - please upgrade journl", doc.Version, jsonStoreVersion)
	}
	if doc.Collections == nil {
		doc.Collections = map[string]json.RawMessage{}
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) GetConfigPath() string { return s.path }

func (s *JSONStore) GetCollection(key string) ([]byte, bool, error) {
	if s.doc == nil {
		return nil, false, jerrors.ErrNotInitialized
	}
	raw, ok := s.doc.Collections[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone([]byte(raw)), true, nil
}

func (s *JSONStore) PutCollection(key string, data []byte) error {
	return s.PutCollections(map[string][]byte{key: data})
}

func (s *JSONStore) PutCollections(values map[string][]byte) error {
	if s.doc == nil {
		return jerrors.ErrNotInitialized
	}
	for key, data := range values {
		if !json.Valid(data) {
			return fmt.Errorf("failed to write collection %s: value is not valid JSON", key)
		}
	}
	for key, data := range values {
		s.doc.Collections[key] = json.RawMessage(slices.Clone(data))
	}
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.doc == nil {
		return nil, jerrors.ErrNotInitialized
	}
	keys := make([]string, 0, len(s.doc.Collections))
	for key := range s.doc.Collections {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// save writes to a temp file and renames it over the original.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}
