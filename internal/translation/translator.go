package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config selects the model and languages of a remote backend
type Config struct {
	From    string
	To      string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 60 * time.Second
	}
	return c.Timeout
}

// Translator translates text with the OpenAI chat completion API
type Translator struct {
	apiKey string
	config Config
	client *openai.Client
}

// NewTranslator creates a new OpenAI translator
func NewTranslator(apiKey string, cfg Config) *Translator {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Translator{
		apiKey: apiKey,
		config: cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// TranslateText translates req.Text from the source to the target language
func (t *Translator) TranslateText(ctx context.Context, req Request) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	ctx, cancel := context.WithTimeout(ctx, t.config.timeout())
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: t.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator of presentation slides.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(t.config.From, t.config.To, req),
			},
		},
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
