package deck

import (
	"strings"

	"codeberg.org/snonux/decktrans/internal/processor"
	"codeberg.org/snonux/decktrans/internal/richtext"
)

// binding ties a live paragraph to the YAML paragraph it was built from
type binding struct {
	source *Paragraph
	live   *richtext.SliceParagraph
	runs   map[*richtext.Run]*Run
}

// Document is a deck opened for translation. Changes made through its
// paragraphs reach the deck on Commit.
type Document struct {
	name     string
	deck     *Deck
	shapes   []processor.Shape
	bindings []binding
}

// Document opens d for translation under name
func (d *Deck) Document(name string) *Document {
	doc := &Document{name: name, deck: d}

	for i, slide := range d.Slides {
		page := d.PageNumber(i)
		for _, shape := range slide.Shapes {
			ps := processor.Shape{Document: name, Page: page}
			for _, para := range shape.Paragraphs {
				b := bind(para)
				doc.bindings = append(doc.bindings, b)
				ps.Paragraphs = append(ps.Paragraphs, b.live)
			}
			doc.shapes = append(doc.shapes, ps)
		}
	}
	return doc
}

func bind(para *Paragraph) binding {
	b := binding{source: para, runs: make(map[*richtext.Run]*Run, len(para.Runs))}

	live := make([]*richtext.Run, 0, len(para.Runs))
	for _, r := range para.Runs {
		lr := r.richtext()
		b.runs[lr] = r
		live = append(live, lr)
	}
	b.live = richtext.NewParagraph(live...)
	return b
}

func (r *Run) richtext() *richtext.Run {
	switch {
	case r.Break:
		return richtext.NewLineBreak()
	case r.Field != "":
		return richtext.NewField(r.Field, r.Text, r.Style.Signature())
	default:
		return richtext.NewText(r.Text, r.Style.Signature())
	}
}

// Name returns the document name used for provenance
func (doc *Document) Name() string {
	return doc.name
}

// Shapes returns the shapes of every slide in order
func (doc *Document) Shapes() []processor.Shape {
	return doc.shapes
}

// Commit writes the live paragraphs back into the deck. Detached runs
// are dropped and rewritten runs take their new text.
func (doc *Document) Commit() {
	for _, b := range doc.bindings {
		runs := make([]*Run, 0, len(b.live.Runs()))
		for _, lr := range b.live.Runs() {
			r, ok := b.runs[lr]
			if !ok {
				continue
			}
			if !lr.IsLineBreak() {
				r.Text = lr.Text
			}
			runs = append(runs, r)
		}
		b.source.Runs = runs
	}
}

// ColorPredicate returns a removal predicate matching runs whose solid
// fill colour is hex. An empty hex yields nil.
func ColorPredicate(hex string) processor.RemovePredicate {
	want := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if want == "" {
		return nil
	}
	return func(r *richtext.Run) bool {
		return r.Signature.Color == want
	}
}
