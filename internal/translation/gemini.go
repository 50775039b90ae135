package translation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiTranslator translates text with the Gemini API
type GeminiTranslator struct {
	apiKey string
	config Config

	once   sync.Once
	client *genai.Client
	err    error
}

// NewGeminiTranslator creates a new Gemini translator. The client is
// created on first use.
func NewGeminiTranslator(apiKey string, cfg Config) *GeminiTranslator {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return &GeminiTranslator{apiKey: apiKey, config: cfg}
}

func (g *GeminiTranslator) connect(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.client, g.err
}

// TranslateText translates req.Text from the source to the target language
func (g *GeminiTranslator) TranslateText(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	client, err := g.connect(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.timeout())
	defer cancel()

	resp, err := client.Models.GenerateContent(ctx, g.config.Model,
		genai.Text(buildPrompt(g.config.From, g.config.To, req)),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.3)})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return text, nil
}
