package factory

import (
	"context"
	"testing"

	"swadesh-ai-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	_, err := NewLLMProvider(ctx, config.AIConfig{Provider: "gemini"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewLLMProvider(ctx, config.AIConfig{Provider: "openai"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewLLMProvider(ctx, config.AIConfig{Provider: "bard"})
	assert.ErrorContains(t, err, "unsupported")

	p, err := NewLLMProvider(ctx, config.AIConfig{Provider: "ollama", OllamaBaseURL: "http://localhost:11434"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())

	p, err = NewLLMProvider(ctx, config.AIConfig{Provider: "openai", OpenAIAPIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}
