package storage

import (
	"errors"

	"github.com/julianstephens/checkin/internal/migration"
)

var (
	// ErrNotLoaded is returned when an item is read or written before Init/Load
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotInitialized is returned by Load when the backing store does not exist yet
	ErrNotInitialized = errors.New("storage not initialized, run 'checkin init' first")
)

// Provider is a string key-value store. Each habit keeps its whole record log
// as one value under a fixed key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Items
	// GetItem returns the value stored under key. found is false when the key
	// has never been written.
	GetItem(key string) (value string, found bool, err error)
	SetItem(key, value string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by SQL-backed providers.
type Migrator interface {
	MigrationRunner() (*migration.Runner, error)
}

// FileBacked is implemented by providers that persist to a single local file,
// which makes them eligible for file backups.
type FileBacked interface {
	FilePath() string
}
