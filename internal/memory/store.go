package memory

import (
	"context"
	"path/filepath"
	"strings"
)

// Store persists the rows of a table. Row position equals Row.Index.
type Store interface {
	// Load returns all non-cleared rows; a missing store is empty
	Load(ctx context.Context) ([]Row, error)
	// Save replaces the stored rows with rows; positions not present in
	// rows are cleared
	Save(ctx context.Context, rows []Row) error
}

// OpenStore picks a store by file extension: SQLite for .db, .sqlite
// and .sqlite3, CSV otherwise
func OpenStore(path string) Store {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path)
	default:
		return NewCSVStore(path)
	}
}
