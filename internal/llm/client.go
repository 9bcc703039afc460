// Package llm provides a provider-agnostic interface for LLM calls.
package llm

import "context"

// Role constants shared by all providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the minimal chat surface the move advisor needs.
// Implementations exist for the OpenAI Chat Completions API (which also
// covers OpenRouter via a custom base URL) and for Anthropic.
type Client interface {
	Chat(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
