// Package translation defines the translation backend contract and its
// implementations: OpenAI and Gemini backends, a circuit breaker, and
// decorators that keep numbers and failures away from callers.
package translation
