package memory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CSVStore keeps rows in a CSV file, one record per index
type CSVStore struct {
	path string
}

// NewCSVStore creates a store for path
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the file path
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads every record; record number is the row index
func (s *CSVStore) Load(_ context.Context) ([]Row, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []Row
	for index := 0; ; index++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary: %w", err)
		}
		row := rowFromColumns(index, record)
		if !row.Empty() {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Save rewrites the file; indexes without a row become empty records
func (s *CSVStore) Save(_ context.Context, rows []Row) error {
	byIndex := make(map[int]Row, len(rows))
	last := -1
	for _, row := range rows {
		byIndex[row.Index] = row
		if row.Index > last {
			last = row.Index
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create dictionary directory: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create dictionary: %w", err)
	}

	w := csv.NewWriter(f)
	empty := make([]string, len(Row{}.Columns()))
	for i := 0; i <= last; i++ {
		record := empty
		if row, ok := byIndex[i]; ok {
			record = row.Columns()
		}
		if err := w.Write(record); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("failed to write dictionary: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close dictionary: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace dictionary: %w", err)
	}
	return nil
}
