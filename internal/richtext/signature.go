package richtext

import "strings"

// Defaults for nullable attributes
const (
	UnderlineNone = "none"
	StrikeNone    = "noStrike"
	CapsNone      = "none"
)

// Attributes holds style attributes as a document reports them. A nil
// field means the attribute is not set on the run.
type Attributes struct {
	Bold            *bool    `yaml:"bold,omitempty"`
	Italic          *bool    `yaml:"italic,omitempty"`
	Underline       *string  `yaml:"underline,omitempty"`
	Strike          *string  `yaml:"strike,omitempty"`
	Caps            *string  `yaml:"caps,omitempty"`
	Baseline        *int     `yaml:"baseline,omitempty"`
	FontFamily      *string  `yaml:"font,omitempty"`
	FontSize        *float64 `yaml:"size,omitempty"`
	Spacing         *int     `yaml:"spacing,omitempty"`
	Color           *string  `yaml:"color,omitempty"`
	Highlight       *string  `yaml:"highlight,omitempty"`
	HyperlinkClick  *string  `yaml:"link,omitempty"`
	HyperlinkHover  *string  `yaml:"hover,omitempty"`
	Kumimoji        *bool    `yaml:"kumimoji,omitempty"`
	NormalizeHeight *bool    `yaml:"normalize_height,omitempty"`
	NoProof         *bool    `yaml:"no_proof,omitempty"`
}

// Signature is the normalized formatting of a run. Every field holds an
// explicit value, so two signatures are similar exactly when they are
// equal.
type Signature struct {
	Bold            bool
	Italic          bool
	Underline       string
	Strike          string
	Caps            string
	Baseline        int
	FontFamily      string
	FontSize        float64
	Spacing         int
	Color           string
	Highlight       string
	HyperlinkClick  string
	HyperlinkHover  string
	FieldType       string
	Kumimoji        bool
	NormalizeHeight bool
	NoProof         bool
}

// Signature normalizes a to its signature
func (a Attributes) Signature() Signature {
	return Signature{
		Bold:            boolOr(a.Bold),
		Italic:          boolOr(a.Italic),
		Underline:       stringOr(a.Underline, UnderlineNone),
		Strike:          stringOr(a.Strike, StrikeNone),
		Caps:            stringOr(a.Caps, CapsNone),
		Baseline:        intOr(a.Baseline),
		FontFamily:      stringOr(a.FontFamily, ""),
		FontSize:        floatOr(a.FontSize),
		Spacing:         intOr(a.Spacing),
		Color:           normalizeColor(a.Color),
		Highlight:       normalizeColor(a.Highlight),
		HyperlinkClick:  stringOr(a.HyperlinkClick, ""),
		HyperlinkHover:  stringOr(a.HyperlinkHover, ""),
		Kumimoji:        boolOr(a.Kumimoji),
		NormalizeHeight: boolOr(a.NormalizeHeight),
		NoProof:         boolOr(a.NoProof),
	}
}

// Similar reports whether runs with these signatures may be merged
func Similar(a, b Signature) bool {
	return a == b
}

// Subscript reports a negative baseline offset
func (s Signature) Subscript() bool {
	return s.Baseline < 0
}

// Superscript reports a positive baseline offset
func (s Signature) Superscript() bool {
	return s.Baseline > 0
}

func boolOr(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// normalizeColor strips a leading '#' and upper-cases hex digits
func normalizeColor(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(*v), "#"))
}
