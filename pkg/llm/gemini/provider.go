// Package gemini adapts the Google Gen AI SDK to llm.LLMProvider.
package gemini

import (
	"context"
	"fmt"

	"swadesh-ai-be/pkg/llm"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

type Provider struct {
	client *genai.Client
	model  string
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(ctx context.Context, apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Provider{client: client, model: model}, nil
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) Generate(ctx context.Context, req llm.Request, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(llm.Options{Model: p.model}, opts...)

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if options.Temperature > 0 {
		t := float32(options.Temperature)
		config.Temperature = &t
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, options.Model, contentsFor(req), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// contentsFor puts attachments ahead of the text in a single user turn.
func contentsFor(req llm.Request) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Attachments)+1)
	for _, a := range req.Attachments {
		parts = append(parts, genai.NewPartFromBytes(a.Data, a.MimeType))
	}
	parts = append(parts, genai.NewPartFromText(req.Content))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
