package llm

import (
	"context"
	"testing"
	"time"
)

func TestNewFromConfigOpenAI(t *testing.T) {
	c, err := NewFromConfig(ProviderConfig{Provider: "openai", Model: "gpt-4o", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if _, ok := c.(*OpenAIClient); !ok {
		t.Fatalf("client type = %T, want *OpenAIClient", c)
	}
}

func TestNewFromConfigOpenRouter(t *testing.T) {
	c, err := NewFromConfig(ProviderConfig{Provider: "openrouter", Model: "openai/gpt-4o", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if _, ok := c.(*OpenAIClient); !ok {
		t.Fatalf("client type = %T, want *OpenAIClient", c)
	}
}

func TestNewFromConfigAnthropic(t *testing.T) {
	c, err := NewFromConfig(ProviderConfig{Provider: "anthropic", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	ac, ok := c.(*AnthropicClient)
	if !ok {
		t.Fatalf("client type = %T, want *AnthropicClient", c)
	}
	if ac.model != "claude-sonnet-4-20250514" {
		t.Fatalf("default model = %q", ac.model)
	}
}

func TestNewFromConfigUnknownProvider(t *testing.T) {
	if _, err := NewFromConfig(ProviderConfig{Provider: "cohere"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewFromConfigEmptyProvider(t *testing.T) {
	if _, err := NewFromConfig(ProviderConfig{}); err == nil {
		t.Fatal("expected error for empty provider")
	}
}

func TestDefaultRegistryShape(t *testing.T) {
	registry := DefaultRegistry("oa", "or", "an")
	if len(registry) != 7 {
		t.Fatalf("registry size = %d, want 7", len(registry))
	}
	seen := map[string]bool{}
	for _, cfg := range registry {
		if cfg.Name == "" || cfg.Provider == "" || cfg.Model == "" {
			t.Errorf("incomplete registry entry: %+v", cfg)
		}
		if seen[cfg.Name] {
			t.Errorf("duplicate registry name %q", cfg.Name)
		}
		seen[cfg.Name] = true
	}
}

func TestCheckAllSkipsMissingKeys(t *testing.T) {
	registry := DefaultRegistry("", "", "")
	results := CheckAll(context.Background(), registry, time.Second)
	if len(results) != len(registry) {
		t.Fatalf("results = %d, want %d", len(results), len(registry))
	}
	for _, r := range results {
		if r.Status != CheckSkipped {
			t.Errorf("%s: status = %s, want skipped", r.Name, r.Status)
		}
	}
}
