package llm

import (
	"context"
)

// Message is one turn of a conversation in a provider-neutral shape.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option sets optional generation parameters (temperature, token limit,
// per-call model override).
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the backend contract the generation adapter retries and
// falls back across. Implementations honor the context deadline; the
// adapter treats an empty response the same as an error.
type LLMProvider interface {
	// Chat sends a conversation history and returns the model's reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate wraps a single prompt as a one-turn chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
