package llm

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

const defaultOpenAIURL = "https://api.openai.com/v1"

// OpenAI is the chat-completion backend. It asks for a JSON object response.
type OpenAI struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	opts    options
}

// NewOpenAI creates a new OpenAI provider.
func NewOpenAI(pc config.ProviderConfig, client *http.Client, logger *slog.Logger, opts ...Option) (*OpenAI, error) {
	if err := requireKey("openai", pc); err != nil {
		return nil, err
	}
	return &OpenAI{
		apiKey:  pc.APIKey,
		model:   pc.Model,
		baseURL: baseURL(pc.BaseURL, defaultOpenAIURL),
		client:  orDefaultClient(client),
		logger:  logger,
		opts:    newOptions(opts),
	}, nil
}

func (o *OpenAI) Name() string { return config.ProviderOpenAI }

func (o *OpenAI) ReviewPR(ctx context.Context, pr *core.PRContext) (*core.AIReviewResult, error) {
	return runReview(ctx, o.logger, o.Name(), o.model, o.opts, pr, o.complete)
}

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	body := openaiRequest{
		Model: o.model,
		Messages: []openaiMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    reviewTemperature,
		ResponseFormat: &openaiResponseFormat{Type: "json_object"},
	}

	var resp openaiResponse
	headers := map[string]string{"Authorization": "Bearer " + o.apiKey}
	if err := doJSON(ctx, o.client, o.Name(), http.MethodPost, o.baseURL+"/chat/completions", headers, body, &resp); err != nil {
		return "", err
	}

	o.logger.Debug("received OpenAI response", "tokens", resp.Usage.TotalTokens)
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return emptyReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}

type openaiRequest struct {
	Model          string                `json:"model"`
	Messages       []openaiMessage       `json:"messages"`
	Temperature    float64               `json:"temperature"`
	ResponseFormat *openaiResponseFormat `json:"response_format,omitempty"`
}

type openaiResponseFormat struct {
	Type string `json:"type"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}

type openaiUsage struct {
	TotalTokens int `json:"total_tokens"`
}
