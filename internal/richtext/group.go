package richtext

import (
	"errors"
	"log"
	"strings"
)

// ErrNoBase is returned when rewriting a group that holds no text run
var ErrNoBase = errors.New("run group has no base run")

// RunGroup is a maximal sequence of consecutive runs sharing one
// signature, with any line breaks between them. It is the unit of
// translation.
type RunGroup struct {
	paragraph Paragraph
	runs      []*Run
	base      *Run

	text   string
	cached bool
}

// NewRunGroup creates an empty group for runs of p
func NewRunGroup(p Paragraph) *RunGroup {
	return &RunGroup{paragraph: p}
}

// Add appends r when it fits the group and reports whether it did. Line
// breaks always fit; the first text run fixes the base signature.
func (g *RunGroup) Add(r *Run) bool {
	switch r.Kind {
	case LineBreak:
	case TextRun, FieldRun:
		if g.base == nil {
			g.base = r
		} else if !Similar(g.base.Signature, r.Signature) {
			return false
		}
	default:
		return false
	}

	g.runs = append(g.runs, r)
	g.cached = false
	return true
}

// Base returns the first text run, or nil for a group of line breaks
func (g *RunGroup) Base() *Run {
	return g.base
}

// Runs returns the runs of the group in paragraph order
func (g *RunGroup) Runs() []*Run {
	return g.runs
}

// Empty reports whether the group holds no runs
func (g *RunGroup) Empty() bool {
	return len(g.runs) == 0
}

// Text returns the concatenated text of the group
func (g *RunGroup) Text() string {
	if !g.cached {
		var b strings.Builder
		for _, r := range g.runs {
			b.WriteString(r.render())
		}
		g.text = b.String()
		g.cached = true
	}
	return g.text
}

// ChangeText collapses the group into its base run carrying text. Every
// other run of the group, line breaks included, is detached from the
// paragraph.
func (g *RunGroup) ChangeText(text string) error {
	if g.base == nil {
		log.Printf("can't change text of group %q: no base run", g.Text())
		return ErrNoBase
	}

	others := make([]*Run, 0, len(g.runs))
	for _, r := range g.runs {
		if r != g.base {
			others = append(others, r)
		}
	}

	g.paragraph.SetText(g.base, text)
	g.paragraph.Detach(others...)

	g.runs = []*Run{g.base}
	g.cached = false
	return nil
}

// RemoveAllFromParagraph detaches every run of the group when remove
// holds for its base run, and reports whether it did
func (g *RunGroup) RemoveAllFromParagraph(remove func(*Run) bool) bool {
	if g.base == nil || remove == nil || !remove(g.base) {
		return false
	}

	log.Printf("remove runs %q from paragraph %q", g.Text(), ParagraphText(g.paragraph))
	detached := append([]*Run(nil), g.runs...)
	g.paragraph.Detach(detached...)

	g.runs = nil
	g.base = nil
	g.cached = false
	return true
}

// Segment groups the runs of p. A run that does not fit the current
// group closes it and opens the next one. An empty paragraph yields no
// groups.
func Segment(p Paragraph) []*RunGroup {
	var groups []*RunGroup
	current := NewRunGroup(p)

	for _, r := range p.Runs() {
		if current.Add(r) {
			continue
		}
		if current.Empty() {
			// Unknown kinds never fit any group
			continue
		}
		groups = append(groups, current)
		current = NewRunGroup(p)
		current.Add(r)
	}

	if !current.Empty() {
		groups = append(groups, current)
	}
	return groups
}
