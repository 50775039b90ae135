package memory

import (
	"fmt"
	"sort"
)

// Translation is one entry of the translation memory
type Translation struct {
	Key        string
	Text       string
	Index      int
	BigContext string
	Contexts   map[string]struct{}
	// Documents maps a document name to its number, assigned from 1 in
	// first-seen order
	Documents map[string]int
	// Pages holds "documentNumber:page" entries
	Pages map[string]struct{}
}

func newTranslation(key, text string, index int) *Translation {
	return &Translation{
		Key:       key,
		Text:      text,
		Index:     index,
		Contexts:  make(map[string]struct{}),
		Documents: make(map[string]int),
		Pages:     make(map[string]struct{}),
	}
}

// record merges one observation into the provenance of t
func (t *Translation) record(context, document string, page int, bigContext string) {
	if context != "" {
		t.Contexts[context] = struct{}{}
	}

	if document != "" {
		number, ok := t.Documents[document]
		if !ok {
			number = len(t.Documents) + 1
			t.Documents[document] = number
		}
		t.Pages[fmt.Sprintf("%d:%d", number, page)] = struct{}{}
	}

	if bigContext != "" && t.BigContext == "" {
		t.BigContext = bigContext
	}
}

// ContextList returns the contexts sorted
func (t *Translation) ContextList() []string {
	return sortedSet(t.Contexts)
}

// PageList returns the pages sorted
func (t *Translation) PageList() []string {
	return sortedSet(t.Pages)
}

func (t *Translation) clone() *Translation {
	c := newTranslation(t.Key, t.Text, t.Index)
	c.BigContext = t.BigContext
	for k := range t.Contexts {
		c.Contexts[k] = struct{}{}
	}
	for k, v := range t.Documents {
		c.Documents[k] = v
	}
	for k := range t.Pages {
		c.Pages[k] = struct{}{}
	}
	return c
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
