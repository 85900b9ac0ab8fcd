package storage

import (
	"errors"

	"github.com/julianstephens/koffee/internal/storage/sqlite"
)

// ErrNotInitialized is returned by Load when no database exists yet.
var ErrNotInitialized = sqlite.ErrNotInitialized

// NewSQLiteStore creates a sqlite-backed Provider at path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// IsNotInitialized reports whether err means the store was never initialized.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}
