package llm

import (
	"context"
	"fmt"
	"log/slog"
	"standupdash/internal/config"
)

// NewBackend picks the text-generation provider named by the configuration.
func NewBackend(ctx context.Context, cfg *config.Config) (SummaryBackend, error) {
	switch cfg.SummaryProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return missingKey("gemini", "GEMINI_API_KEY"), nil
		}
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return missingKey("openai", "OPENAI_API_KEY"), nil
		}
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return missingKey("anthropic", "ANTHROPIC_API_KEY"), nil
		}
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.SummaryProvider)
	}
}

func missingKey(provider, envVar string) SummaryBackend {
	slog.Warn("summary provider has no API key, summary requests will fail", "provider", provider, "env", envVar)
	return unconfiguredBackend{provider: provider}
}
