package service

import (
	"context"

	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/pkg/llm"
	"swadesh-ai-be/pkg/persona"
)

// ToolInvocation is a fully rendered tool prompt.
type ToolInvocation struct {
	Name        string
	Role        string // appended to the shared persona
	Prompt      string
	Attachments []llm.Attachment
	NoPersona   bool
}

type IToolService interface {
	Run(ctx context.Context, inv ToolInvocation) (*dto.ToolResponse, error)
}

type toolService struct {
	generation IGenerationService
	logger     logger.ILogger
}

func NewToolService(generation IGenerationService, log logger.ILogger) IToolService {
	return &toolService{generation: generation, logger: log}
}

func (s *toolService) Run(ctx context.Context, inv ToolInvocation) (*dto.ToolResponse, error) {
	req := llm.Request{
		Content:     inv.Prompt,
		Attachments: inv.Attachments,
	}
	if !inv.NoPersona {
		req.SystemInstruction = persona.ToolInstruction(inv.Role)
	}

	text, err := s.generation.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("TOOL", "Tool call failed", map[string]interface{}{"tool": inv.Name})
		return nil, err
	}
	return &dto.ToolResponse{Result: text}, nil
}
