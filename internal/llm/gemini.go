package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

const (
	defaultGeminiURL  = "https://generativelanguage.googleapis.com"
	geminiModelPrefix = "models/"
	generateMethod    = "generateContent"
)

// geminiPreferred lists stable models in the order they are tried when the
// configured one is not served.
var geminiPreferred = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
}

// GeminiModel is one entry of the Gemini model listing.
type GeminiModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// ShortName returns the model name without the "models/" prefix.
func (m GeminiModel) ShortName() string {
	return strings.TrimPrefix(m.Name, geminiModelPrefix)
}

// CanGenerate reports whether the model supports content generation.
func (m GeminiModel) CanGenerate() bool {
	return slices.Contains(m.SupportedGenerationMethods, generateMethod)
}

// Gemini talks to the Google Generative Language REST API. The model is
// resolved against the live listing on first use and cached on the instance.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	opts    options

	mu       sync.Mutex
	resolved string
}

// NewGemini creates a new Gemini provider.
func NewGemini(pc config.ProviderConfig, client *http.Client, logger *slog.Logger, opts ...Option) (*Gemini, error) {
	if err := requireKey("gemini", pc); err != nil {
		return nil, err
	}
	return &Gemini{
		apiKey:  pc.APIKey,
		model:   strings.TrimPrefix(pc.Model, geminiModelPrefix),
		baseURL: baseURL(pc.BaseURL, defaultGeminiURL),
		client:  orDefaultClient(client),
		logger:  logger,
		opts:    newOptions(opts),
	}, nil
}

func (g *Gemini) Name() string { return config.ProviderGemini }

func (g *Gemini) ReviewPR(ctx context.Context, pr *core.PRContext) (*core.AIReviewResult, error) {
	model, err := g.ResolveModel(ctx)
	if err != nil {
		return nil, err
	}
	return runReview(ctx, g.logger, g.Name(), model, g.opts, pr, func(ctx context.Context, prompt string) (string, error) {
		return g.generate(ctx, model, prompt)
	})
}

// ListModels returns every model the API key can see.
func (g *Gemini) ListModels(ctx context.Context) ([]GeminiModel, error) {
	var resp geminiListResponse
	url := g.baseURL + "/v1beta/models?pageSize=1000"
	if err := doJSON(ctx, g.client, g.Name(), http.MethodGet, url, g.headers(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

// ResolveModel picks the model to generate with. A successful pick is cached
// for the life of the instance; failures are not, so the next call retries.
func (g *Gemini) ResolveModel(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolved != "" {
		return g.resolved, nil
	}

	models, err := g.ListModels(ctx)
	if err != nil {
		return "", err
	}

	name, err := SelectModel(g.model, models)
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Err: err}
	}

	if g.model != "" && name != g.model {
		g.logger.Warn("configured Gemini model not available, using fallback",
			"configured", g.model, "selected", name)
	} else {
		g.logger.Info("selected Gemini model", "model", name)
	}
	g.resolved = name
	return name, nil
}

// SelectModel chooses among the listed models that support generation. The
// configured model wins if served; then each preferred name is tried as an
// exact match and then as a prefix of a stable model. Failing that the first
// stable model is used, then the first model at all.
func SelectModel(configured string, models []GeminiModel) (string, error) {
	var names []string
	for _, m := range models {
		if m.CanGenerate() {
			names = append(names, m.ShortName())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: no Gemini model supports %s", core.ErrNoSuitableModel, generateMethod)
	}

	candidates := geminiPreferred
	if configured != "" {
		candidates = append([]string{strings.TrimPrefix(configured, geminiModelPrefix)}, geminiPreferred...)
	}

	for _, want := range candidates {
		if slices.Contains(names, want) {
			return want, nil
		}
		for _, name := range names {
			if strings.HasPrefix(name, want) && isStable(name) {
				return name, nil
			}
		}
	}

	for _, name := range names {
		if isStable(name) {
			return name, nil
		}
	}
	return names[0], nil
}

func isStable(name string) bool {
	lower := strings.ToLower(name)
	return !strings.Contains(lower, "preview") &&
		!strings.Contains(lower, "-exp") &&
		!strings.Contains(lower, "experimental")
}

func (g *Gemini) generate(ctx context.Context, model, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: jsonSystemPrompt + "\n\n" + prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     reviewTemperature,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 8192,
		},
	}

	var resp geminiResponse
	url := fmt.Sprintf("%s/v1beta/models/%s:%s", g.baseURL, model, generateMethod)
	if err := doJSON(ctx, g.client, g.Name(), http.MethodPost, url, g.headers(), body, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", &ProviderError{Provider: g.Name(), Err: errNoCandidates}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return emptyReply, nil
	}
	return sb.String(), nil
}

func (g *Gemini) headers() map[string]string {
	return map[string]string{"x-goog-api-key": g.apiKey}
}

type geminiListResponse struct {
	Models []GeminiModel `json:"models"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}
