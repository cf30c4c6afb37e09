package generate

import (
	"context"
	"fmt"
	"time"

	"career-compass-be/internal/pkg/logger"
	"career-compass-be/pkg/llm"
)

// state is the adapter's position in the retry/fallback machine.
type state int

const (
	stateAttempt state = iota
	stateRetry
	stateFallback
	stateExhausted
)

// Result carries the generated text plus the provenance callers need for
// response metadata.
type Result struct {
	Text       string
	Provider   string
	Model      string
	Retries    int
	DurationMs int64
}

type Config struct {
	MaxRetries  int
	Timeout     time.Duration
	BackoffBase time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		Timeout:     60 * time.Second,
		BackoffBase: 500 * time.Millisecond,
	}
}

// Adapter wraps a primary and an optional fallback provider. Each provider
// gets MaxRetries+1 attempts with exponential backoff before the adapter
// moves on. Context cancellation stops the machine immediately.
type Adapter struct {
	primary       llm.LLMProvider
	fallback      llm.LLMProvider
	primaryName   string
	fallbackName  string
	primaryModel  string
	fallbackModel string
	config        Config
	log           logger.ILogger
}

func NewAdapter(
	primary llm.LLMProvider, primaryName, primaryModel string,
	fallback llm.LLMProvider, fallbackName, fallbackModel string,
	config Config,
	log logger.ILogger,
) *Adapter {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	if config.BackoffBase <= 0 {
		config.BackoffBase = DefaultConfig().BackoffBase
	}
	return &Adapter{
		primary:       primary,
		fallback:      fallback,
		primaryName:   primaryName,
		fallbackName:  fallbackName,
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
		config:        config,
		log:           log,
	}
}

// Generate runs the prompt through the state machine and returns the first
// successful completion.
func (a *Adapter) Generate(ctx context.Context, prompt string, opts ...llm.Option) (*Result, error) {
	start := time.Now()

	provider := a.primary
	providerName := a.primaryName
	model := a.primaryModel
	retries := 0
	attempt := 0
	var lastErr error

	current := stateAttempt
	for current != stateExhausted {
		switch current {
		case stateAttempt:
			callCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
			text, err := provider.Generate(callCtx, prompt, opts...)
			cancel()
			if err == nil && text != "" {
				return &Result{
					Text:       text,
					Provider:   providerName,
					Model:      model,
					Retries:    retries,
					DurationMs: time.Since(start).Milliseconds(),
				}, nil
			}
			if err == nil {
				err = fmt.Errorf("provider %s returned empty response", providerName)
			}
			lastErr = err
			a.log.Warn("generate", "generation attempt failed", map[string]interface{}{
				"provider": providerName,
				"attempt":  attempt + 1,
				"error":    err.Error(),
			})

			if ctx.Err() != nil {
				current = stateExhausted
			} else if attempt < a.config.MaxRetries {
				current = stateRetry
			} else {
				current = stateFallback
			}

		case stateRetry:
			backoff := a.config.BackoffBase * (1 << attempt)
			select {
			case <-ctx.Done():
				current = stateExhausted
				continue
			case <-time.After(backoff):
			}
			attempt++
			retries++
			current = stateAttempt

		case stateFallback:
			if a.fallback == nil || provider == a.fallback {
				current = stateExhausted
				continue
			}
			a.log.Info("generate", "switching to fallback provider", map[string]interface{}{
				"from": providerName,
				"to":   a.fallbackName,
			})
			provider = a.fallback
			providerName = a.fallbackName
			model = a.fallbackModel
			attempt = 0
			current = stateAttempt
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("generation cancelled after %d retries: %w", retries, ctxErr)
	}
	return nil, fmt.Errorf("all providers exhausted after %d retries: %w", retries, lastErr)
}
