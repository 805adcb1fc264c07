package llm

import (
	"fmt"
	"time"
)

// Provider identifies a completion service backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// Options carries provider-agnostic construction settings. Zero values
// fall back to each provider's defaults.
type Options struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewClient constructs the client for the named provider.
func NewClient(provider Provider, opts Options) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{
			BaseURL: opts.BaseURL,
			Model:   opts.Model,
			Timeout: opts.Timeout,
		}), nil
	case ProviderAnthropic:
		return NewAnthropicClient(AnthropicConfig{
			BaseURL: opts.BaseURL,
			Model:   opts.Model,
			Timeout: opts.Timeout,
		}), nil
	case ProviderGemini:
		return NewGeminiClient(GeminiConfig{
			Model: opts.Model,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai, anthropic, or gemini)", provider)
	}
}
