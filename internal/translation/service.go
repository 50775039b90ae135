package translation

import (
	"context"
	"log"
	"strconv"
	"strings"
)

// Sentinel translations that are control signals rather than text
const (
	// Remove drops the translatable core and keeps the affixes
	Remove = "REMOVE"
	// RemoveFull drops the whole run group text
	RemoveFull = "REMOVE_FULL"
)

// Request describes one piece of text to translate and where it was seen
type Request struct {
	Text                 string
	Context              string
	Document             string
	Page                 int
	BigContext           string
	UseOriginalAsDefault bool
}

// fallback is the answer when no translation is available
func (r Request) fallback() string {
	if r.UseOriginalAsDefault {
		return r.Text
	}
	return ""
}

// Service translates text. Implementations never fail: when no
// translation is available they return "" or, if requested, the
// original text.
type Service interface {
	Translate(ctx context.Context, req Request) string
}

// Backend is a remote translation provider that may fail
type Backend interface {
	TranslateText(ctx context.Context, req Request) (string, error)
}

// ServiceFunc adapts a function to Service
type ServiceFunc func(ctx context.Context, req Request) string

// Translate calls f
func (f ServiceFunc) Translate(ctx context.Context, req Request) string {
	return f(ctx, req)
}

type emptyOrDefault struct{}

// EmptyOrDefault never translates
var EmptyOrDefault Service = emptyOrDefault{}

func (emptyOrDefault) Translate(_ context.Context, req Request) string {
	return req.fallback()
}

type guard struct {
	backend Backend
}

// Guard turns a Backend into a Service that logs errors
func Guard(b Backend) Service {
	return &guard{backend: b}
}

func (g *guard) Translate(ctx context.Context, req Request) string {
	text, err := g.backend.TranslateText(ctx, req)
	if err != nil {
		log.Printf("can't translate %q because of %v", req.Text, err)
		return req.fallback()
	}
	if text == "" {
		return req.fallback()
	}
	return text
}

type noTranslationNeeded struct {
	next Service
}

// NoTranslationNeeded returns numbers unchanged without consulting next
// and contains any panic raised by next
func NoTranslationNeeded(next Service) Service {
	return &noTranslationNeeded{next: next}
}

func (n *noTranslationNeeded) Translate(ctx context.Context, req Request) (text string) {
	if IsNumber(req.Text) {
		return req.Text
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("can't translate %q because of %v", req.Text, r)
			text = ""
		}
	}()
	return n.next.Translate(ctx, req)
}

// IsNumber reports whether text parses as a floating point number
func IsNumber(text string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	return err == nil
}
