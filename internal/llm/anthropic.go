package llm

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

const (
	defaultAnthropicURL = "https://api.anthropic.com"
	anthropicAPIVersion = "2023-06-01"
	anthropicMaxTokens  = 4096
)

// Anthropic is the messages-API backend.
type Anthropic struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	opts    options
}

// NewAnthropic creates a new Anthropic provider.
func NewAnthropic(pc config.ProviderConfig, client *http.Client, logger *slog.Logger, opts ...Option) (*Anthropic, error) {
	if err := requireKey("anthropic", pc); err != nil {
		return nil, err
	}
	return &Anthropic{
		apiKey:  pc.APIKey,
		model:   pc.Model,
		baseURL: baseURL(pc.BaseURL, defaultAnthropicURL),
		client:  orDefaultClient(client),
		logger:  logger,
		opts:    newOptions(opts),
	}, nil
}

func (a *Anthropic) Name() string { return config.ProviderAnthropic }

func (a *Anthropic) ReviewPR(ctx context.Context, pr *core.PRContext) (*core.AIReviewResult, error) {
	return runReview(ctx, a.logger, a.Name(), a.model, a.opts, pr, a.complete)
}

func (a *Anthropic) complete(ctx context.Context, prompt string) (string, error) {
	body := anthropicRequest{
		Model:       a.model,
		MaxTokens:   anthropicMaxTokens,
		Temperature: reviewTemperature,
		System:      jsonSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp anthropicResponse
	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicAPIVersion,
	}
	if err := doJSON(ctx, a.client, a.Name(), http.MethodPost, a.baseURL+"/v1/messages", headers, body, &resp); err != nil {
		return "", err
	}

	a.logger.Debug("received Anthropic response",
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return emptyReply, nil
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicBlock `json:"content"`
	Usage   anthropicUsage   `json:"usage"`
}

type anthropicBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
