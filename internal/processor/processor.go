package processor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"codeberg.org/snonux/decktrans/internal/affix"
	"codeberg.org/snonux/decktrans/internal/richtext"
	"codeberg.org/snonux/decktrans/internal/translation"
)

// RemovePredicate selects run groups to delete instead of translate. It
// is evaluated against the base run of a group.
type RemovePredicate func(*richtext.Run) bool

// Shape is a set of paragraphs translated with one shared big context
type Shape struct {
	Document   string
	Page       int
	Paragraphs []richtext.Paragraph
}

// Document is a translatable document as seen by the processor
type Document interface {
	Name() string
	Shapes() []Shape
}

// Stats counts the outcome of run groups
type Stats struct {
	Groups     int
	Translated int
	Removed    int
	Skipped    int
	Failed     int
}

// Add accumulates o into s
func (s *Stats) Add(o Stats) {
	s.Groups += o.Groups
	s.Translated += o.Translated
	s.Removed += o.Removed
	s.Skipped += o.Skipped
	s.Failed += o.Failed
}

func (s Stats) String() string {
	return fmt.Sprintf("groups=%d translated=%d removed=%d skipped=%d failed=%d",
		s.Groups, s.Translated, s.Removed, s.Skipped, s.Failed)
}

// Processor translates documents through a translation service,
// usually a memory.Table
type Processor struct {
	service translation.Service
	remove  RemovePredicate
	status  func(string)
}

// NewProcessor creates a processor. remove may be nil.
func NewProcessor(service translation.Service, remove RemovePredicate) *Processor {
	return &Processor{service: service, remove: remove, status: func(string) {}}
}

// SetStatus installs a progress callback called once per page
func (p *Processor) SetStatus(status func(string)) {
	if status == nil {
		status = func(string) {}
	}
	p.status = status
}

// TranslateDocument translates every shape of doc
func (p *Processor) TranslateDocument(ctx context.Context, doc Document) Stats {
	log.Printf("translate %s", doc.Name())

	var stats Stats
	page := -1
	for _, shape := range doc.Shapes() {
		if shape.Page != page {
			page = shape.Page
			p.status(fmt.Sprintf("page %d", page))
		}
		stats.Add(p.TranslateShape(ctx, shape))
	}
	return stats
}

// TranslateShape translates the paragraphs of one shape
func (p *Processor) TranslateShape(ctx context.Context, shape Shape) Stats {
	var stats Stats

	texts := make([]string, len(shape.Paragraphs))
	for i, para := range shape.Paragraphs {
		texts[i] = richtext.ParagraphText(para)
	}
	bigContext := strings.Join(texts, "\n")

	for i, para := range shape.Paragraphs {
		paragraphText := texts[i]
		if paragraphText == "" {
			continue
		}

		for _, group := range richtext.Segment(para) {
			stats.Groups++
			if group.RemoveAllFromParagraph(p.remove) {
				stats.Removed++
				continue
			}

			req := translation.Request{
				Context:    paragraphText,
				Document:   shape.Document,
				Page:       shape.Page,
				BigContext: bigContext,
			}
			changed, err := p.translateGroup(ctx, group, req)
			switch {
			case err != nil:
				log.Printf("can't translate %q in %q: %v", group.Text(), paragraphText, err)
				stats.Failed++
			case changed:
				stats.Translated++
			default:
				stats.Skipped++
			}
		}
	}
	return stats
}

// translateGroup rewrites one run group and reports whether it changed.
// Panics are turned into errors so one group cannot abort a document.
func (p *Processor) translateGroup(ctx context.Context, group *richtext.RunGroup, req translation.Request) (changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			changed = false
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	raw := group.Text()
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}

	prefix, core, suffix := affix.Split(raw)
	if core == "" {
		return false, nil
	}

	req.Text = core
	translated := p.service.Translate(ctx, req)
	log.Printf("%s=%s in %q", raw, translated, req.Context)
	if translated == "" || translated == core {
		return false, nil
	}

	if err := group.ChangeText(NewText(prefix, translated, suffix)); err != nil {
		return false, err
	}
	return true, nil
}

// NewText reassembles a group text from its affixes and translation,
// honouring the removal sentinels
func NewText(prefix, translated, suffix string) string {
	switch translated {
	case translation.RemoveFull:
		return ""
	case translation.Remove:
		return prefix + suffix
	default:
		return prefix + translated + suffix
	}
}
