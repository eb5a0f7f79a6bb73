package service

import (
	"context"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/identity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/pkg/llm"
	"swadesh-ai-be/pkg/persona"
)

type IChatService interface {
	Chat(ctx context.Context, id identity.Identity, req *dto.ChatRequest, mode persona.Mode) (*dto.ChatResponse, error)
}

type chatService struct {
	assembler  IMemoryContextAssembler
	generation IGenerationService
	logger     logger.ILogger
}

func NewChatService(assembler IMemoryContextAssembler, generation IGenerationService, log logger.ILogger) IChatService {
	return &chatService{assembler: assembler, generation: generation, logger: log}
}

func (s *chatService) Chat(ctx context.Context, id identity.Identity, req *dto.ChatRequest, mode persona.Mode) (*dto.ChatResponse, error) {
	if !s.generation.Available() {
		return nil, apperror.Unavailable("AI service is not configured")
	}

	fullContext, err := s.assembler.Assemble(ctx, id, req.Context)
	if err != nil {
		// Personalisation is best effort; carry on with what the caller sent.
		s.logger.Warn("CHAT", "Memory context unavailable, continuing without it", map[string]interface{}{
			"identity": id.String(),
			"error":    err.Error(),
		})
		fullContext = req.Context
	}

	prompt := persona.Compose(req.Message, persona.ParsePersonality(req.Personality), fullContext, mode)

	text, err := s.generation.Generate(ctx, llm.Request{
		SystemInstruction: prompt.SystemInstruction,
		Content:           prompt.Content,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{Response: text}, nil
}
