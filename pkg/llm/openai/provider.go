// Package openai adapts any OpenAI-compatible chat completions endpoint to
// llm.LLMProvider.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"swadesh-ai-be/pkg/llm"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultModel = "gpt-4o-mini"

type Provider struct {
	client sdk.Client
	model  string
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, baseURL, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Provider{client: sdk.NewClient(opts...), model: model}, nil
}

func (p *Provider) Name() string {
	return "openai"
}

func (p *Provider) Generate(ctx context.Context, req llm.Request, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(llm.Options{Model: p.model}, opts...)

	params := sdk.ChatCompletionNewParams{
		Model:    sdk.ChatModel(options.Model),
		Messages: messagesFor(req),
	}
	if options.Temperature > 0 {
		params.Temperature = sdk.Float(options.Temperature)
	}
	if options.MaxTokens > 0 {
		params.MaxCompletionTokens = sdk.Int(int64(options.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func messagesFor(req llm.Request) []sdk.ChatCompletionMessageParamUnion {
	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, sdk.SystemMessage(req.SystemInstruction))
	}

	if len(req.Attachments) == 0 {
		return append(messages, sdk.UserMessage(req.Content))
	}

	parts := make([]sdk.ChatCompletionContentPartUnionParam, 0, len(req.Attachments)+1)
	for _, a := range req.Attachments {
		parts = append(parts, sdk.ImageContentPart(sdk.ChatCompletionContentPartImageImageURLParam{
			URL: dataURL(a),
		}))
	}
	parts = append(parts, sdk.TextContentPart(req.Content))
	return append(messages, sdk.UserMessage(parts))
}

func dataURL(a llm.Attachment) string {
	return "data:" + a.MimeType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}
