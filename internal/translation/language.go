package translation

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ValidateLanguage checks that code is a BCP 47 language tag
func ValidateLanguage(code string) error {
	if code == "" {
		return fmt.Errorf("language code is empty")
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}

// LanguageName returns the English name of a language code, or the code
// itself when it is unknown
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
