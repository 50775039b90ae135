package memory

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/decktrans/internal/translation"
)

func populate(t *testing.T) *Table {
	t.Helper()
	ctx := context.Background()
	table := NewTable("source")
	texts := map[string]string{"Hi": "Hallo", "Bye": "Tschüss", "Friend, \"dear\"": "Freund"}
	compute := func(_ context.Context, r translation.Request) string { return texts[r.Text] }

	table.LookupOrCompute(ctx, translation.Request{Text: "Hi", Context: "Hi all", Document: "intro", Page: 1, BigContext: "Hi all\nBye"}, compute)
	table.LookupOrCompute(ctx, translation.Request{Text: "Bye", Context: "Bye", Document: "intro", Page: 2}, compute)
	table.LookupOrCompute(ctx, translation.Request{Text: "Hi", Context: "Hi, you", Document: "talk: part 2", Page: 7}, compute)
	table.LookupOrCompute(ctx, translation.Request{Text: "Friend, \"dear\"", Context: "line\nbreak"}, compute)
	return table
}

func assertSameTables(t *testing.T, want, got *Table) {
	t.Helper()
	w, g := want.Translations(), got.Translations()
	if len(w) != len(g) {
		t.Fatalf("got %d translations, want %d", len(g), len(w))
	}
	for i := range w {
		if !reflect.DeepEqual(w[i], g[i]) {
			t.Errorf("translation %d:\n got  %+v\n want %+v", i, g[i], w[i])
		}
	}
}

func stores(t *testing.T) map[string]Store {
	dir := t.TempDir()
	return map[string]Store{
		"csv":    NewCSVStore(filepath.Join(dir, "dictionary.csv")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "dictionary.db")),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			source := populate(t)

			if err := source.PersistTo(ctx, store); err != nil {
				t.Fatalf("PersistTo failed: %v", err)
			}

			loaded := NewTable("loaded")
			if err := loaded.LoadFrom(ctx, store); err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}

			assertSameTables(t, source, loaded)
		})
	}
}

func TestPersistClearsStaleRows(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			table := populate(t)
			if err := table.PersistTo(ctx, store); err != nil {
				t.Fatalf("PersistTo failed: %v", err)
			}

			table.RemoveUnreferencedKeys([]string{"Bye"})
			if err := table.PersistTo(ctx, store); err != nil {
				t.Fatalf("PersistTo failed: %v", err)
			}

			rows, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(rows) != 1 || rows[0].Key != "Bye" || rows[0].Index != 1 {
				t.Errorf("rows after prune = %+v", rows)
			}
		})
	}
}

func TestLoadContinuesIndexes(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			table := populate(t)
			table.RemoveUnreferencedKeys([]string{"Bye"})
			if err := table.PersistTo(ctx, store); err != nil {
				t.Fatalf("PersistTo failed: %v", err)
			}

			loaded := NewTable("loaded")
			if err := loaded.LoadFrom(ctx, store); err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}
			loaded.LookupOrCompute(ctx, translation.Request{Text: "New"}, func(context.Context, translation.Request) string { return "Neu" })

			entry, _ := loaded.Lookup("New")
			if entry.Index != 2 {
				t.Errorf("new index = %d, want 2", entry.Index)
			}
			bye, _ := loaded.Lookup("Bye")
			if bye.Index != 1 {
				t.Errorf("Bye index = %d, want 1", bye.Index)
			}
		})
	}
}

func TestLoadMissingStore(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			table := NewTable("empty")
			if err := table.LoadFrom(context.Background(), store); err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}
			if table.Len() != 0 {
				t.Errorf("Len() = %d, want 0", table.Len())
			}
		})
	}
}

func TestCSVFileLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dictionary.csv")
	table := populate(t)
	table.RemoveUnreferencedKeys([]string{"Bye"})

	if err := table.PersistTo(ctx, NewCSVStore(path)); err != nil {
		t.Fatalf("PersistTo failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read dictionary: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), content)
	}
	if lines[0] != ",,,,," {
		t.Errorf("cleared row = %q, want empty record", lines[0])
	}
	if lines[1] != "Bye,Tschüss,Bye,intro:1,1:2," {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestCSVInvalidDocumentNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.csv")
	if err := os.WriteFile(path, []byte("Hi,Hallo,,intro:one,,\n"), 0644); err != nil {
		t.Fatalf("failed to write dictionary: %v", err)
	}

	if err := NewTable("bad").LoadFrom(context.Background(), NewCSVStore(path)); err == nil {
		t.Error("expected error for invalid document number")
	}
}

func TestRowEncoding(t *testing.T) {
	entry := newTranslation("k", "v", 3)
	entry.record("b", "doc:with:colons", 2, "big")
	entry.record("a", "second", 9, "")

	row := encodeRow(entry)
	if row.Contexts != "a"+Separator+"b" {
		t.Errorf("contexts = %q", row.Contexts)
	}
	if row.Documents != "doc:with:colons:1"+Separator+"second:2" {
		t.Errorf("documents = %q", row.Documents)
	}

	decoded, err := decodeRow(row)
	if err != nil {
		t.Fatalf("decodeRow failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, entry) {
		t.Errorf("decoded = %+v, want %+v", decoded, entry)
	}
}

func TestOpenStore(t *testing.T) {
	tests := map[string]string{
		"dict.csv":     "*memory.CSVStore",
		"dict.db":      "*memory.SQLiteStore",
		"dict.SQLite":  "*memory.SQLiteStore",
		"dict.sqlite3": "*memory.SQLiteStore",
		"dict":         "*memory.CSVStore",
	}
	for path, want := range tests {
		if got := reflect.TypeOf(OpenStore(path)).String(); got != want {
			t.Errorf("OpenStore(%q) = %s, want %s", path, got, want)
		}
	}
}
