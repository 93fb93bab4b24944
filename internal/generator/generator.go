// Package generator turns review fields into testimonial prose by calling a
// remote language model. Every call is a fresh upstream round trip.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/review"
)

// ErrEmptyReply is returned when the upstream call succeeds but yields no text.
var ErrEmptyReply = errors.New("upstream returned no review text")

// UpstreamError is a non-success answer from the model provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream generation failed: status %d, body: %s", e.StatusCode, e.Body)
}

// Generator produces a testimonial from review fields. Implementations
// return trimmed, non-empty text or an error.
type Generator interface {
	Generate(ctx context.Context, fields review.Fields) (string, error)
}

// Options are shared by every provider.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	// APIKey is consulted on each request.
	APIKey func() string
}

// New picks the provider named in the configuration.
func New(cfg *config.Config) (Generator, error) {
	opts := Options{
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
		APIKey:      cfg.LLMAPIKey,
	}

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewChatClient(cfg.LLMAPIURL, opts), nil
	case config.ProviderGemini:
		// Gateway-style model ids carry a vendor prefix the Gemini API rejects.
		opts.Model = strings.TrimPrefix(opts.Model, "google/")
		return NewGeminiClient("", opts), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

func finish(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
