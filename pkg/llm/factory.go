package llm

import (
	"fmt"
	"os"
	"strings"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// CreateFromEnv resolves a client from environment variables, with optional
// provider/model overrides from CLI flags. A missing API key is reported
// here, before any network call is attempted.
func CreateFromEnv(providerOverride, modelOverride string, opts Options) (LLM, error) {
	provider := strings.ToLower(providerOverride)
	if provider == "" {
		provider = strings.ToLower(os.Getenv("LLM_PROVIDER"))
	}

	switch Provider(provider) {
	case ProviderOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		if model != "" {
			return NewOpenAIWithModel(apiKey, model, opts), nil
		}
		return NewOpenAI(apiKey, opts), nil

	case ProviderClaude, "":
		// Default to Claude when no provider is configured
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("CLAUDE_MODEL")
		}
		if model != "" {
			return NewClaudeWithModel(apiKey, model, opts), nil
		}
		return NewClaude(apiKey, opts), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: claude, openai)", provider)
	}
}
