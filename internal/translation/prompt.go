package translation

import (
	"fmt"
	"strings"
)

// maxContextLen caps the big context passed to a model
const maxContextLen = 2000

func buildPrompt(from, to string, req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following %s text to %s.\n", LanguageName(from), LanguageName(to))
	b.WriteString("Respond with only the translation, nothing else. Keep the original capitalization style.\n")

	if req.Context != "" && req.Context != req.Text {
		fmt.Fprintf(&b, "\nThe text is part of this sentence: %s\n", req.Context)
	}
	if bc := strings.TrimSpace(req.BigContext); bc != "" {
		if r := []rune(bc); len(r) > maxContextLen {
			bc = string(r[:maxContextLen])
		}
		fmt.Fprintf(&b, "\nThe surrounding slide reads:\n%s\n", bc)
	}

	fmt.Fprintf(&b, "\nText: %s", req.Text)
	return b.String()
}
