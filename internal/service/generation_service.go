package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/pkg/llm"
)

var errEmptyGeneration = errors.New("model returned an empty response")

type IGenerationService interface {
	Available() bool
	ProviderName() string
	// Generate makes a single bounded attempt. Every failure, including an
	// empty reply, is GenerationFailed.
	Generate(ctx context.Context, req llm.Request) (string, error)
}

type generationService struct {
	provider llm.LLMProvider // nil when no key is configured
	timeout  time.Duration
	logger   logger.ILogger
}

func NewGenerationService(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) IGenerationService {
	return &generationService{provider: provider, timeout: timeout, logger: log}
}

func (s *generationService) Available() bool {
	return s.provider != nil
}

func (s *generationService) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

func (s *generationService) Generate(ctx context.Context, req llm.Request) (string, error) {
	if s.provider == nil {
		return "", apperror.Unavailable("AI service is not configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.provider.Generate(ctx, req)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyGeneration
	}
	if err != nil {
		s.logger.Error("GENERATION", "Generation call failed", map[string]interface{}{
			"provider":    s.provider.Name(),
			"duration_ms": time.Since(start).Milliseconds(),
			"attachments": len(req.Attachments),
			"error":       err.Error(),
		})
		return "", apperror.GenerationFailed(err)
	}

	s.logger.Debug("GENERATION", "Generation call finished", map[string]interface{}{
		"provider":    s.provider.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return text, nil
}
