package llm

import (
	"context"
)

// Attachment is inline binary input such as an image.
type Attachment struct {
	MimeType string
	Data     []byte
}

// Request is one single-turn generation call.
type Request struct {
	SystemInstruction string
	Content           string
	Attachments       []Attachment
}

type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // overrides the provider default
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// ApplyOptions folds opts over defaults.
func ApplyOptions(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// LLMProvider is a text (and optionally vision) generation backend.
// Implementations make exactly one upstream call per Generate.
type LLMProvider interface {
	Name() string
	Generate(ctx context.Context, req Request, options ...Option) (string, error)
}
