package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/decktrans/internal/richtext"
)

// Deck is a YAML slide deck
type Deck struct {
	Title  string   `yaml:"title,omitempty"`
	Slides []*Slide `yaml:"slides"`
}

// Slide is one page of a deck. Number defaults to the slide position.
type Slide struct {
	Number int      `yaml:"number,omitempty"`
	Shapes []*Shape `yaml:"shapes"`
}

// Shape is a text frame on a slide
type Shape struct {
	Name       string       `yaml:"name,omitempty"`
	Paragraphs []*Paragraph `yaml:"paragraphs"`
}

// Paragraph is an ordered list of runs
type Paragraph struct {
	Runs []*Run `yaml:"runs"`
}

// Run is a text run, a field (Field set) or a line break (Break set)
type Run struct {
	Text  string              `yaml:"text,omitempty"`
	Break bool                `yaml:"break,omitempty"`
	Field string              `yaml:"field,omitempty"`
	Style richtext.Attributes `yaml:"style,omitempty"`
}

// Load reads a deck from path
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
	}
	return &d, nil
}

// Save writes the deck to path, creating parent directories
func (d *Deck) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write deck: %w", err)
	}
	return nil
}

// PageNumber returns the page number of the slide at position i
func (d *Deck) PageNumber(i int) int {
	if n := d.Slides[i].Number; n > 0 {
		return n
	}
	return i + 1
}

// Text returns the plain text of the deck, one paragraph per line
func (d *Deck) Text() string {
	var b bytes.Buffer
	for _, slide := range d.Slides {
		for _, shape := range slide.Shapes {
			for _, para := range shape.Paragraphs {
				for _, r := range para.Runs {
					if r.Break {
						b.WriteByte(' ')
						continue
					}
					b.WriteString(r.Text)
				}
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
