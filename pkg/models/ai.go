// Package models contains shared data models used across the TalkLens codebase.
package models

import "context"

// CompletionProvider is the core interface that all LLM integrations must implement.
// Never call specific completion backends directly; always inject this interface.
type CompletionProvider interface {
	// Complete sends one instruction/content pair to the model and returns the
	// raw reply text. Retry policy, if any, belongs to the caller.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name returns the provider identifier (e.g., "openai", "dashscope").
	Name() string
}

// CompletionRequest is the input to a single model completion.
// System carries the task directive, User the raw input text, and Context the
// optional retrieved material assembled before the call.
type CompletionRequest struct {
	System  string
	User    string
	Context string
}

// Snippet is one ranked match returned by the vector retrieval service.
type Snippet struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
