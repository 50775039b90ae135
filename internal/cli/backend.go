package cli

import (
	"fmt"

	"codeberg.org/snonux/decktrans/internal/translation"
)

// NewService builds the translation service selected by flags. The
// "none" backend leaves texts missing from the dictionaries untranslated.
func NewService(flags *Flags) (translation.Service, error) {
	for _, code := range []string{flags.From, flags.To} {
		if err := translation.ValidateLanguage(code); err != nil {
			return nil, err
		}
	}

	cfg := translation.Config{From: flags.From, To: flags.To}

	var backend translation.Backend
	switch flags.Backend {
	case BackendNone, "":
		return translation.EmptyOrDefault, nil
	case BackendOpenAI:
		key := GetOpenAIKey()
		if key == "" {
			return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .decktrans.yaml")
		}
		cfg.Model = flags.OpenAIModel
		backend = translation.NewTranslator(key, cfg)
	case BackendGemini:
		key := GetGeminiKey()
		if key == "" {
			return nil, fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .decktrans.yaml")
		}
		cfg.Model = flags.GeminiModel
		backend = translation.NewGeminiTranslator(key, cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q (use none, openai or gemini)", flags.Backend)
	}

	if flags.Breaker {
		backend = translation.Breaker(backend, translation.BreakerSettings{Name: flags.Backend})
	}
	return translation.Guard(backend), nil
}
