package affix

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantPrefix string
		wantCore   string
		wantSuffix string
	}{
		{
			name:       "numbered sentence",
			raw:        "  42. Hello, world!!  ",
			wantPrefix: "  42. ",
			wantCore:   "Hello, world",
			wantSuffix: "!!  ",
		},
		{
			name:       "only boundary characters",
			raw:        "---",
			wantPrefix: "---",
		},
		{
			name:     "plain word",
			raw:      "Hello",
			wantCore: "Hello",
		},
		{
			name:       "trailing punctuation only",
			raw:        "Привет!",
			wantCore:   "Привет",
			wantSuffix: "!",
		},
		{
			name:       "quotes and dashes",
			raw:        "„Слово“ — ",
			wantPrefix: "„",
			wantCore:   "Слово",
			wantSuffix: "“ — ",
		},
		{
			name:       "bracketed verse reference",
			raw:        "[1] Psalm 23:1",
			wantPrefix: "[1] ",
			wantCore:   "Psalm",
			wantSuffix: " 23:1",
		},
		{
			name:       "single character core",
			raw:        "1. a.",
			wantPrefix: "1. ",
			wantCore:   "a",
			wantSuffix: ".",
		},
		{
			name:     "newline inside core keeps remainder",
			raw:      "one\ntwo.",
			wantCore: "one\ntwo.",
		},
		{
			name:       "percent and degree",
			raw:        "90% ",
			wantPrefix: "90% ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, core, suffix := Split(tt.raw)
			if prefix != tt.wantPrefix || core != tt.wantCore || suffix != tt.wantSuffix {
				t.Errorf("Split(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.raw, prefix, core, suffix, tt.wantPrefix, tt.wantCore, tt.wantSuffix)
			}
			if prefix+core+suffix != tt.raw {
				t.Errorf("Split(%q) does not reassemble: %q", tt.raw, prefix+core+suffix)
			}
		})
	}
}

func TestIsBoundary(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"...", true},
		{" 12 ", true},
		{"a.", false},
		{"№ 5", true},
	}

	for _, tt := range tests {
		if got := IsBoundary(tt.in); got != tt.want {
			t.Errorf("IsBoundary(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
