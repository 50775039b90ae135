package richtext

import "strings"

// Kind tags the variant of a Run
type Kind int

const (
	// TextRun is a span of text with one formatting signature
	TextRun Kind = iota
	// FieldRun is a text field (slide number, date) with its own signature
	FieldRun
	// LineBreak is a soft line break inside a paragraph
	LineBreak
)

func (k Kind) String() string {
	switch k {
	case TextRun:
		return "text"
	case FieldRun:
		return "field"
	case LineBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Run is the smallest unit of formatted paragraph content
type Run struct {
	Kind      Kind
	Text      string
	Signature Signature
}

// NewText creates a text run
func NewText(text string, sig Signature) *Run {
	return &Run{Kind: TextRun, Text: text, Signature: sig}
}

// NewField creates a field run; the field type becomes part of its signature
func NewField(fieldType, text string, sig Signature) *Run {
	sig.FieldType = fieldType
	return &Run{Kind: FieldRun, Text: text, Signature: sig}
}

// NewLineBreak creates a line-break marker
func NewLineBreak() *Run {
	return &Run{Kind: LineBreak}
}

// IsLineBreak reports whether r is a line-break marker
func (r *Run) IsLineBreak() bool {
	return r.Kind == LineBreak
}

// render returns the text a run contributes to its group or paragraph
func (r *Run) render() string {
	switch r.Kind {
	case LineBreak:
		return " "
	case TextRun, FieldRun:
		return r.Text
	default:
		return ""
	}
}

// Paragraph is the read/mutate surface a document exposes for one
// paragraph. Runs are identified by pointer.
type Paragraph interface {
	Runs() []*Run
	SetText(r *Run, text string)
	Detach(runs ...*Run)
}

// ParagraphText returns the paragraph text with line breaks rendered as
// a single space
func ParagraphText(p Paragraph) string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.render())
	}
	return b.String()
}

// SliceParagraph is an in-memory Paragraph
type SliceParagraph struct {
	runs []*Run
}

// NewParagraph creates a paragraph holding runs in order
func NewParagraph(runs ...*Run) *SliceParagraph {
	return &SliceParagraph{runs: runs}
}

// Runs returns the current runs of the paragraph
func (p *SliceParagraph) Runs() []*Run {
	return p.runs
}

// SetText replaces the text of r
func (p *SliceParagraph) SetText(r *Run, text string) {
	r.Text = text
}

// Detach removes runs from the paragraph; unknown runs are ignored
func (p *SliceParagraph) Detach(runs ...*Run) {
	if len(runs) == 0 {
		return
	}
	drop := make(map[*Run]struct{}, len(runs))
	for _, r := range runs {
		drop[r] = struct{}{}
	}

	kept := p.runs[:0]
	for _, r := range p.runs {
		if _, ok := drop[r]; !ok {
			kept = append(kept, r)
		}
	}
	// Clear the tail so detached runs can be collected
	for i := len(kept); i < len(p.runs); i++ {
		p.runs[i] = nil
	}
	p.runs = kept
}
