package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/decktrans/internal/translation"
)

// MockService mocks a translation.Service from a fixed dictionary
type MockService struct {
	Translations map[string]string
	// Panics lists texts for which Translate panics
	Panics       map[string]bool

	mu       sync.Mutex
	Requests []translation.Request
}

// Translate returns the dictionary entry for req.Text, or "" when absent
func (m *MockService) Translate(_ context.Context, req translation.Request) string {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.Panics[req.Text] {
		panic(fmt.Sprintf("mock panic for %q", req.Text))
	}
	return m.Translations[req.Text]
}

// Calls returns how often text was requested
func (m *MockService) Calls(text string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.Requests {
		if r.Text == text {
			n++
		}
	}
	return n
}

// MockBackend mocks a remote translation.Backend
type MockBackend struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// TranslateText mocks a remote translation call
func (m *MockBackend) TranslateText(_ context.Context, req translation.Request) (string, error) {
	m.Calls = append(m.Calls, req.Text)

	if err, ok := m.Errors[req.Text]; ok {
		return "", err
	}

	if text, ok := m.Translations[req.Text]; ok {
		return text, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", req.Text), nil
}
