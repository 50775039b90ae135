package memory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps rows in a SQLite database, keyed by index
type SQLiteStore struct {
	path string
}

// NewSQLiteStore creates a store for the database at path
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Path returns the database path
func (s *SQLiteStore) Path() string {
	return s.path
}

const createDictionaryTable = `CREATE TABLE IF NOT EXISTS dictionary (
	idx integer PRIMARY KEY,
	source text NOT NULL,
	translated text NOT NULL,
	contexts text NOT NULL,
	documents text NOT NULL,
	pages text NOT NULL,
	big_context text NOT NULL
)`

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createDictionaryTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create dictionary table: %w", err)
	}
	return db, nil
}

// Load reads all rows ordered by index; a missing database is empty
func (s *SQLiteStore) Load(ctx context.Context) ([]Row, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT idx, source, translated, contexts, documents, pages, big_context FROM dictionary ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionary: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Index, &r.Key, &r.Text, &r.Contexts, &r.Documents, &r.Pages, &r.BigContext); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Save upserts rows and deletes every row whose index is not in rows
func (s *SQLiteStore) Save(ctx context.Context, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create dictionary directory: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `CREATE TEMP TABLE live (idx integer PRIMARY KEY)`); err != nil {
		return fmt.Errorf("failed to create live table: %w", err)
	}

	upsert, err := tx.PrepareContext(ctx, `INSERT INTO dictionary
		(idx, source, translated, contexts, documents, pages, big_context)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(idx) DO UPDATE SET
			source = excluded.source,
			translated = excluded.translated,
			contexts = excluded.contexts,
			documents = excluded.documents,
			pages = excluded.pages,
			big_context = excluded.big_context`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer upsert.Close()

	for _, r := range rows {
		if _, err := upsert.ExecContext(ctx, r.Index, r.Key, r.Text, r.Contexts, r.Documents, r.Pages, r.BigContext); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r.Index, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO live (idx) VALUES (?)`, r.Index); err != nil {
			return fmt.Errorf("failed to mark row %d: %w", r.Index, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary WHERE idx NOT IN (SELECT idx FROM live)`); err != nil {
		return fmt.Errorf("failed to clear stale rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE live`); err != nil {
		return fmt.Errorf("failed to drop live table: %w", err)
	}

	return tx.Commit()
}
