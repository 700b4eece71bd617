package model

import (
	"context"
	"fmt"

	"tpb/internal/platform/config"
)

// FromConfig builds the invoker selected by cfg.Provider, behind a Breaker
// when cfg.BreakerThreshold is positive.
func FromConfig(ctx context.Context, cfg config.ClerkConfig) (Invoker, error) {
	inv, err := provider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewBreaker(inv, cfg.BreakerThreshold, cfg.BreakerCooldown), nil
}

func provider(ctx context.Context, cfg config.ClerkConfig) (Invoker, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic, "":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic provider requires ANTHROPIC_API_KEY")
		}
		return NewAnthropicClient(AnthropicConfig{
			APIKey:  cfg.AnthropicAPIKey,
			URL:     cfg.AnthropicURL,
			Timeout: cfg.ModelTimeout,
		}), nil
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires GEMINI_API_KEY")
		}
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelTimeout)
	default:
		return nil, fmt.Errorf("unknown clerk provider %q", cfg.Provider)
	}
}
