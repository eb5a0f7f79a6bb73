package factory

import (
	"context"
	"errors"
	"fmt"

	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/pkg/llm"
	"swadesh-ai-be/pkg/llm/gemini"
	"swadesh-ai-be/pkg/llm/ollama"
	"swadesh-ai-be/pkg/llm/openai"
)

// ErrNotConfigured means the selected provider has no credentials. AI
// endpoints stay off but the process keeps running.
var ErrNotConfigured = errors.New("llm provider not configured")

func NewLLMProvider(ctx context.Context, cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "", "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, ErrNotConfigured
		}
		return gemini.NewProvider(ctx, cfg.GeminiAPIKey, cfg.Model)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, ErrNotConfigured
		}
		return openai.NewProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model)
	case "ollama":
		if cfg.OllamaBaseURL == "" {
			return nil, ErrNotConfigured
		}
		return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
