package memory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"codeberg.org/snonux/decktrans/internal/translation"
)

// ComputeFunc produces the translation of a key missing from a table
type ComputeFunc func(ctx context.Context, req translation.Request) string

// Table is a translation memory. It is safe for concurrent use; a
// table's fallback must be a different table.
type Table struct {
	name string

	mu           sync.Mutex
	entries      map[string]*Translation
	nextIndex    int
	backend      translation.Service
	fallback     *Table
	writeThrough bool
}

// Option configures a Table
type Option func(*Table)

// WithBackend sets the service that computes missing translations
func WithBackend(s translation.Service) Option {
	return func(t *Table) {
		t.backend = s
	}
}

// WithFallback layers t over fb. A key missing from t is resolved by
// fb: with writeThrough fb records it like any other lookup, otherwise
// fb is only read and its backend asked without inserting into fb.
func WithFallback(fb *Table, writeThrough bool) Option {
	return func(t *Table) {
		t.fallback = fb
		t.writeThrough = writeThrough
	}
}

// NewTable creates an empty table
func NewTable(name string, opts ...Option) *Table {
	t := &Table{
		name:    name,
		entries: make(map[string]*Translation),
		backend: translation.EmptyOrDefault,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the table name used in log lines
func (t *Table) Name() string {
	return t.name
}

// LookupOrCompute returns the stored translation of req.Text, merging
// the provenance of req into it. A missing key is computed exactly
// once and stored under the next free index.
func (t *Table) LookupOrCompute(ctx context.Context, req translation.Request, compute ComputeFunc) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, ok := t.entries[req.Text]; ok {
		entry.record(req.Context, req.Document, req.Page, req.BigContext)
		return entry.Text
	}

	entry := newTranslation(req.Text, compute(ctx, req), t.nextIndex)
	t.nextIndex++
	entry.record(req.Context, req.Document, req.Page, req.BigContext)
	t.entries[req.Text] = entry
	return entry.Text
}

// Translate implements translation.Service on top of the table
func (t *Table) Translate(ctx context.Context, req translation.Request) string {
	return t.LookupOrCompute(ctx, req, t.resolve)
}

// resolve computes a key missing from t
func (t *Table) resolve(ctx context.Context, req translation.Request) string {
	if t.fallback == nil {
		return t.backend.Translate(ctx, req)
	}
	if t.writeThrough {
		return t.fallback.Translate(ctx, req)
	}
	if entry, ok := t.fallback.Lookup(req.Text); ok {
		return entry.Text
	}
	return t.fallback.backend.Translate(ctx, req)
}

// Lookup returns a copy of the entry for key
func (t *Table) Lookup(key string) (*Translation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return entry.clone(), true
}

// Len returns the number of entries
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Keys returns all keys sorted by index
func (t *Table) Keys() []string {
	entries := t.Translations()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Translations returns copies of all entries sorted by index
func (t *Table) Translations() []*Translation {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Translation, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// RemoveUnreferencedKeys drops every entry whose key is not in live and
// returns the number of removed entries
func (t *Table) RemoveUnreferencedKeys(live []string) int {
	keep := make(map[string]struct{}, len(live))
	for _, k := range live {
		keep[k] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	size := len(t.entries)
	removed := 0
	for k := range t.entries {
		if _, ok := keep[k]; !ok {
			delete(t.entries, k)
			removed++
		}
	}

	log.Printf("%s: remove unreferenced keys, original size=%d, removed=%d, current=%d",
		t.name, size, removed, len(t.entries))
	return removed
}

// LoadFrom replaces the content of t with the rows of s. Empty rows are
// skipped; indexes are taken from the rows.
func (t *Table) LoadFrom(ctx context.Context, s Store) error {
	rows, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", t.name, err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })

	entries := make(map[string]*Translation, len(rows))
	next := 0
	for _, row := range rows {
		if row.Index >= next {
			next = row.Index + 1
		}
		if row.Empty() {
			continue
		}
		entry, err := decodeRow(row)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", t.name, err)
		}
		if _, dup := entries[entry.Key]; dup {
			log.Printf("%s: duplicate key %q at row %d ignored", t.name, entry.Key, row.Index)
			continue
		}
		entries[entry.Key] = entry
	}

	t.mu.Lock()
	t.entries = entries
	t.nextIndex = next
	t.mu.Unlock()

	log.Printf("%s: loaded %d translations", t.name, len(entries))
	return nil
}

// PersistTo writes one row per entry at its index. Rows of indexes no
// longer in use are cleared by the store.
func (t *Table) PersistTo(ctx context.Context, s Store) error {
	var rows []Row
	for _, e := range t.Translations() {
		if strings.TrimSpace(e.Key) == "" {
			continue
		}
		rows = append(rows, encodeRow(e))
	}

	if err := s.Save(ctx, rows); err != nil {
		return fmt.Errorf("failed to persist %s: %w", t.name, err)
	}
	log.Printf("%s: persisted %d translations", t.name, len(rows))
	return nil
}
