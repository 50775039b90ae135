package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type stubBackend struct {
	text  string
	err   error
	calls int
}

func (s *stubBackend) TranslateText(_ context.Context, _ Request) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestEmptyOrDefault(t *testing.T) {
	ctx := context.Background()

	if got := EmptyOrDefault.Translate(ctx, Request{Text: "Hallo"}); got != "" {
		t.Errorf("Translate() = %q, want empty", got)
	}
	if got := EmptyOrDefault.Translate(ctx, Request{Text: "Hallo", UseOriginalAsDefault: true}); got != "Hallo" {
		t.Errorf("Translate() = %q, want original", got)
	}
}

func TestGuard(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		backend *stubBackend
		req     Request
		want    string
	}{
		{"success", &stubBackend{text: "Hello"}, Request{Text: "Hallo"}, "Hello"},
		{"error returns empty", &stubBackend{err: errors.New("boom")}, Request{Text: "Hallo"}, ""},
		{"error returns original", &stubBackend{err: errors.New("boom")}, Request{Text: "Hallo", UseOriginalAsDefault: true}, "Hallo"},
		{"empty answer returns original", &stubBackend{}, Request{Text: "Hallo", UseOriginalAsDefault: true}, "Hallo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.backend).Translate(ctx, tt.req); got != tt.want {
				t.Errorf("Translate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNoTranslationNeeded(t *testing.T) {
	ctx := context.Background()
	calls := 0
	next := ServiceFunc(func(_ context.Context, req Request) string {
		calls++
		return "translated " + req.Text
	})
	svc := NoTranslationNeeded(next)

	for _, number := range []string{"42", "3.14", "-7", "1e3", " 12 "} {
		if got := svc.Translate(ctx, Request{Text: number}); got != number {
			t.Errorf("Translate(%q) = %q, want unchanged", number, got)
		}
	}
	if calls != 0 {
		t.Errorf("next called %d times for numbers", calls)
	}

	if got := svc.Translate(ctx, Request{Text: "word"}); got != "translated word" {
		t.Errorf("Translate(word) = %q", got)
	}
	if calls != 1 {
		t.Errorf("next called %d times, want 1", calls)
	}
}

func TestNoTranslationNeededRecovers(t *testing.T) {
	svc := NoTranslationNeeded(ServiceFunc(func(context.Context, Request) string {
		panic("service exploded")
	}))

	if got := svc.Translate(context.Background(), Request{Text: "word"}); got != "" {
		t.Errorf("Translate() = %q, want empty after panic", got)
	}
}

func TestIsNumber(t *testing.T) {
	tests := map[string]bool{
		"1":      true,
		"1.5":    true,
		"-0.25":  true,
		"":       false,
		"12a":    false,
		"1,5":    false,
		"eleven": false,
	}
	for in, want := range tests {
		if got := IsNumber(in); got != want {
			t.Errorf("IsNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	backend := &stubBackend{err: errors.New("unavailable")}
	b := Breaker(backend, BreakerSettings{Name: "test", MaxFailures: 2, Cooldown: time.Hour})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := b.TranslateText(ctx, Request{Text: "x"}); err == nil {
			t.Fatal("expected backend error")
		}
	}

	_, err := b.TranslateText(ctx, Request{Text: "x"})
	if err == nil || !strings.Contains(err.Error(), "open") {
		t.Errorf("expected open circuit error, got %v", err)
	}
	if backend.calls != 2 {
		t.Errorf("backend called %d times, want 2", backend.calls)
	}
}

func TestBreakerPassesResult(t *testing.T) {
	b := Breaker(&stubBackend{text: "Hello"}, BreakerSettings{})
	got, err := b.TranslateText(context.Background(), Request{Text: "Hallo"})
	if err != nil || got != "Hello" {
		t.Errorf("TranslateText() = %q, %v", got, err)
	}
}

func TestLanguage(t *testing.T) {
	if err := ValidateLanguage("de"); err != nil {
		t.Errorf("ValidateLanguage(de) error: %v", err)
	}
	if err := ValidateLanguage(""); err == nil {
		t.Error("expected error for empty language")
	}
	if err := ValidateLanguage("not a tag"); err == nil {
		t.Error("expected error for invalid tag")
	}
	if got := LanguageName("ru"); got != "Russian" {
		t.Errorf("LanguageName(ru) = %q, want Russian", got)
	}
	if got := LanguageName("???"); got != "???" {
		t.Errorf("LanguageName(???) = %q", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("ru", "de", Request{
		Text:       "Слово",
		Context:    "Слово Божие",
		BigContext: "Заголовок\nСлово Божие",
	})

	for _, want := range []string{"Russian", "German", "Слово Божие", "Заголовок", "Text: Слово"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	plain := buildPrompt("en", "de", Request{Text: "Hello", Context: "Hello"})
	if strings.Contains(plain, "part of this sentence") {
		t.Error("context equal to text should not be repeated")
	}
}
