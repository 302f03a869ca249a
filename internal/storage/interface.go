package storage

// Provider persists journl's state as independent named collections of
// JSON-encoded values. A missing collection is not an error.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections
	GetCollection(key string) ([]byte, bool, error)
	PutCollection(key string, data []byte) error
	// PutCollections writes several collections in one step.
	PutCollections(values map[string][]byte) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
