package llm

import (
	"context"
	"time"
)

// DefaultRegistry returns the named client configurations the project
// knows how to talk to. Entries whose API key is missing from the
// environment are kept in the list and skipped at check time.
func DefaultRegistry(openAIKey, openRouterKey, anthropicKey string) []ProviderConfig {
	return []ProviderConfig{
		{Name: "Gpt35OpenRouter", Provider: "openrouter", Model: "openai/gpt-3.5-turbo", APIKey: openRouterKey},
		{Name: "Gpt5OpenRouter", Provider: "openrouter", Model: "openai/gpt-5", APIKey: openRouterKey},
		{Name: "GptOss120bOpenRouter", Provider: "openrouter", Model: "openai/gpt-oss-120b", APIKey: openRouterKey},
		{Name: "Gpt4oOpenRouter", Provider: "openrouter", Model: "openai/gpt-4o", APIKey: openRouterKey},
		{Name: "Gpt5", Provider: "openai", Model: "gpt-5", APIKey: openAIKey},
		{Name: "Gpt5Mini", Provider: "openai", Model: "gpt-5-mini", APIKey: openAIKey},
		{Name: "ClaudeSonnet", Provider: "anthropic", Model: "claude-sonnet-4-20250514", APIKey: anthropicKey},
	}
}

// CheckStatus is the outcome of probing one registry entry.
type CheckStatus string

const (
	CheckPassed  CheckStatus = "passed"
	CheckFailed  CheckStatus = "failed"
	CheckSkipped CheckStatus = "skipped"
)

type CheckResult struct {
	Name     string
	Provider string
	Model    string
	Status   CheckStatus
	Err      error
}

const checkPrompt = `Reply with the single word "ok" and nothing else.`

// CheckAll probes every registry entry with a one-shot chat call and
// reports per-client results. Entries without an API key are skipped
// rather than failed, mirroring how the game itself degrades.
func CheckAll(ctx context.Context, registry []ProviderConfig, timeout time.Duration) []CheckResult {
	results := make([]CheckResult, 0, len(registry))
	for _, cfg := range registry {
		results = append(results, checkOne(ctx, cfg, timeout))
	}
	return results
}

func checkOne(ctx context.Context, cfg ProviderConfig, timeout time.Duration) CheckResult {
	result := CheckResult{Name: cfg.Name, Provider: cfg.Provider, Model: cfg.Model}

	if cfg.APIKey == "" {
		result.Status = CheckSkipped
		return result
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		result.Status = CheckFailed
		result.Err = err
		return result
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := client.Chat(callCtx, "", checkPrompt); err != nil {
		result.Status = CheckFailed
		result.Err = err
		return result
	}

	result.Status = CheckPassed
	return result
}
