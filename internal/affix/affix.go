package affix

import (
	"regexp"
	"strings"
)

// boundary is the character class of non-translatable affix characters
const boundary = `[ \d:’“;.,«»?!%&<>\n\t)(\-—+'…\[\]"/°№„]`

var (
	prefixPattern = regexp.MustCompile(`^` + boundary + `+`)
	suffixPattern = regexp.MustCompile(`^(.+?)(` + boundary + `+)$`)
)

// Split splits raw into a leading affix, the translatable core and a
// trailing affix. prefix+core+suffix always equals raw.
func Split(raw string) (prefix, core, suffix string) {
	prefix = prefixPattern.FindString(raw)
	core = strings.TrimPrefix(raw, prefix)
	if core == "" {
		return prefix, "", ""
	}

	if m := suffixPattern.FindStringSubmatch(core); m != nil {
		return prefix, m[1], m[2]
	}
	return prefix, core, ""
}

// IsBoundary reports whether s consists only of affix characters
func IsBoundary(s string) bool {
	return s != "" && prefixPattern.FindString(s) == s
}
