package llm

import "fmt"

// ProviderConfig holds what's needed to construct an LLM client.
type ProviderConfig struct {
	Name     string // registry label, e.g. "Gpt4oOpenRouter"
	Provider string // "openai", "openrouter", or "anthropic"
	Model    string
	APIKey   string
	BaseURL  string // for OpenAI-compatible endpoints
}

// NewFromConfig creates the appropriate Client based on provider name.
func NewFromConfig(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "openrouter":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = OpenRouterBaseURL
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, baseURL), nil

	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.Model), nil

	case "":
		return nil, fmt.Errorf("no LLM provider configured (set LLM_PROVIDER)")

	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// OpenRouterBaseURL is the default OpenAI-compatible endpoint for
// OpenRouter-hosted models.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"
