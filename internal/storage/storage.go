// Package storage persists journl state as named collections in SQLite or
// a single JSON file.
package storage

import (
	"path/filepath"
	"strings"
)

// New picks the store for path: a .json suffix selects the JSON file store,
// anything else SQLite.
func New(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
