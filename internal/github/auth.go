package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v73/github"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

const defaultAPIURL = "https://api.github.com/"

// NewClient picks the authentication for one review: the App installation
// when the service runs as a GitHub App and the event carries an installation
// id, the personal access token otherwise.
func NewClient(ctx context.Context, cfg *config.Config, installationID int64, logger *slog.Logger) (Client, error) {
	if cfg.GitHub.UsesApp() && installationID != 0 {
		return NewInstallationClient(cfg, installationID, logger)
	}
	if cfg.GitHub.Token == "" {
		return nil, fmt.Errorf("%w: no GitHub token and no app installation available", core.ErrConfiguration)
	}
	return NewPATClient(ctx, cfg, logger)
}

// NewPATClient creates a client authenticated with a personal access token.
// Requests go through an ETag cache and the secondary rate limit handler.
func NewPATClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
	ctx = context.WithValue(ctx, oauth2.HTTPClient, baseHTTPClient())
	tc := oauth2.NewClient(ctx, ts)

	client, err := newGoGitHub(tc, cfg.GitHub.APIURL)
	if err != nil {
		return nil, err
	}
	return NewGitHubClient(client, cfg.Review, logger), nil
}

// NewInstallationClient creates a client authenticated as the given App
// installation. Installation tokens are minted and refreshed by the transport.
func NewInstallationClient(cfg *config.Config, installationID int64, logger *slog.Logger) (Client, error) {
	logger.Info("creating GitHub installation client", "installation_id", installationID)

	itr, err := ghinstallation.NewKeyFromFile(baseHTTPClient().Transport, cfg.GitHub.AppID, installationID, cfg.GitHub.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GitHub App transport: %w", core.ErrConfiguration, err)
	}
	if apiURL := normalizeAPIURL(cfg.GitHub.APIURL); apiURL != defaultAPIURL {
		itr.BaseURL = strings.TrimSuffix(apiURL, "/")
	}

	client, err := newGoGitHub(&http.Client{Transport: itr}, cfg.GitHub.APIURL)
	if err != nil {
		return nil, err
	}
	return NewGitHubClient(client, cfg.Review, logger), nil
}

// NewClientWithHTTPClient creates a Client talking to baseURL through
// httpClient. It is meant for tests against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, limits config.ReviewConfig, logger *slog.Logger) (Client, error) {
	client := github.NewClient(httpClient)
	u, err := url.Parse(normalizeAPIURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u
	return NewGitHubClient(client, limits, logger), nil
}

// baseHTTPClient stacks the go-github-ratelimit handler on top of an
// in-memory ETag cache.
func baseHTTPClient() *http.Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	return github_ratelimit.NewClient(cacheTransport)
}

func newGoGitHub(httpClient *http.Client, apiURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	apiURL = normalizeAPIURL(apiURL)
	if apiURL == defaultAPIURL {
		return client, nil
	}
	client, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid GITHUB_API_URL %q: %w", core.ErrConfiguration, apiURL, err)
	}
	return client, nil
}

func normalizeAPIURL(apiURL string) string {
	if apiURL == "" {
		return defaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	return apiURL
}
