// Package llm turns a pull request into a review by talking to one of several
// interchangeable model backends.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// reviewTemperature keeps answers close to deterministic across runs.
const reviewTemperature = 0.3

// Provider reviews a pull request with a single model backend.
//
//go:generate mockgen -destination=../mocks/mock_provider.go -package=mocks . Provider
type Provider interface {
	ReviewPR(ctx context.Context, pr *core.PRContext) (*core.AIReviewResult, error)
	Name() string
}

// Option configures how a backend builds its prompt.
type Option func(*options)

type options struct {
	contentLimit int
}

// WithContentLimit leaves out the full contents of files whose text has n or
// more characters. Zero or less disables the limit.
func WithContentLimit(n int) Option {
	return func(o *options) {
		o.contentLimit = n
	}
}

func newOptions(opts []Option) options {
	o := options{contentLimit: DefaultContentLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewProvider creates the backend selected by cfg.Provider. Unknown providers
// and missing credentials fail with core.ErrConfiguration.
func NewProvider(cfg config.AIConfig, logger *slog.Logger, opts ...Option) (Provider, error) {
	client := NewHTTPClient(cfg.RequestTimeout)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		p, err := NewOpenAI(cfg.OpenAI, client, logger, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderAnthropic:
		p, err := NewAnthropic(cfg.Anthropic, client, logger, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderGemini:
		p, err := NewGemini(cfg.Gemini, client, logger, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unsupported AI provider: %q", core.ErrConfiguration, cfg.Provider)
	}
}

// completeFunc sends the rendered prompt to a backend and returns its raw text.
type completeFunc func(ctx context.Context, prompt string) (string, error)

// runReview is the flow every backend shares: render the prompt, make exactly
// one completion call and normalize the answer.
func runReview(ctx context.Context, logger *slog.Logger, provider, model string, o options, pr *core.PRContext, complete completeFunc) (*core.AIReviewResult, error) {
	logger.Info("starting PR review",
		"provider", provider,
		"model", model,
		"pr", pr.PullNumber,
		"files", len(pr.Files),
	)

	prompt, err := BuildReviewPrompt(pr, o.contentLimit)
	if err != nil {
		return nil, err
	}

	raw, err := complete(ctx, prompt)
	if err != nil {
		logger.Error("review request failed", "provider", provider, "error", err)
		return nil, err
	}

	result := ParseReview(raw)
	logger.Info("received review",
		"provider", provider,
		"rating", result.Summary.OverallRating,
		"comments", len(result.Comments),
	)
	return result, nil
}

func requireKey(provider string, pc config.ProviderConfig) error {
	if pc.APIKey == "" {
		return fmt.Errorf("%w: %s API key is not set", core.ErrConfiguration, provider)
	}
	return nil
}

func baseURL(configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	return strings.TrimRight(configured, "/")
}

func orDefaultClient(client *http.Client) *http.Client {
	if client == nil {
		return NewHTTPClient(0)
	}
	return client
}
