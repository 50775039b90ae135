package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    os.Stdout,
	}
}

// ListAvailableModels prints the chat models usable for translation
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .decktrans.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	l.print(ChatModels(ids))
	return nil
}

func (l *Lister) print(chat []string) {
	fmt.Fprintln(l.out, "Chat/Translation Models (use with --openai-model):")
	if len(chat) == 0 {
		fmt.Fprintln(l.out, "  No chat models found")
		return
	}
	for _, model := range chat {
		fmt.Fprintf(l.out, "  %s\n", model)
	}
}

// ChatModels filters model IDs down to sorted chat completion models
func ChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		if !isChatModel(id) {
			continue
		}
		chat = append(chat, id)
	}
	sort.Strings(chat)
	return chat
}

func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "image", "dall-e", "embedding", "search"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.Contains(id, "gpt") || strings.Contains(id, "chat") ||
		strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4")
}
