package memory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// Separator joins the values of a multi-valued column
	Separator = "≤"
	// documentNumberSeparator separates a document name from its number
	documentNumberSeparator = ":"
)

// Row is one persisted translation; columns in fixed order
type Row struct {
	Index      int
	Key        string
	Text       string
	Contexts   string
	Documents  string
	Pages      string
	BigContext string
}

// Empty reports whether the row holds no translation
func (r Row) Empty() bool {
	return strings.TrimSpace(r.Key) == ""
}

// Columns returns the row values in column order
func (r Row) Columns() []string {
	return []string{r.Key, r.Text, r.Contexts, r.Documents, r.Pages, r.BigContext}
}

// rowFromColumns builds a row; missing trailing columns are empty
func rowFromColumns(index int, cols []string) Row {
	get := func(i int) string {
		if i < len(cols) {
			return cols[i]
		}
		return ""
	}
	return Row{
		Index:      index,
		Key:        get(0),
		Text:       get(1),
		Contexts:   get(2),
		Documents:  get(3),
		Pages:      get(4),
		BigContext: get(5),
	}
}

func encodeRow(t *Translation) Row {
	docs := make([]string, 0, len(t.Documents))
	for name, number := range t.Documents {
		docs = append(docs, name+documentNumberSeparator+strconv.Itoa(number))
	}
	sort.Strings(docs)

	return Row{
		Index:      t.Index,
		Key:        t.Key,
		Text:       t.Text,
		Contexts:   strings.Join(t.ContextList(), Separator),
		Documents:  strings.Join(docs, Separator),
		Pages:      strings.Join(t.PageList(), Separator),
		BigContext: t.BigContext,
	}
}

func decodeRow(r Row) (*Translation, error) {
	t := newTranslation(r.Key, r.Text, r.Index)
	t.BigContext = r.BigContext

	for _, c := range splitValues(r.Contexts) {
		t.Contexts[c] = struct{}{}
	}
	for _, p := range splitValues(r.Pages) {
		t.Pages[p] = struct{}{}
	}
	for _, d := range splitValues(r.Documents) {
		i := strings.LastIndex(d, documentNumberSeparator)
		if i < 0 {
			continue
		}
		number, err := strconv.Atoi(strings.TrimSpace(d[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid document number in %q: %w", r.Index, d, err)
		}
		t.Documents[d[:i]] = number
	}
	return t, nil
}

func splitValues(s string) []string {
	var out []string
	for _, v := range strings.Split(s, Separator) {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
