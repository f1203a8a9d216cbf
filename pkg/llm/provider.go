package llm

import (
	"context"
)

// Option tunes a single generation call.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // override the provider default
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

// LLMProvider is the contract for a text generation backend. Answer
// drafting is single-shot prompt completion, no conversation state.
type LLMProvider interface {
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
