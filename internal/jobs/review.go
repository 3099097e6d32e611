package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/github"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/llm"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/review"
)

// ClientFactory builds the hosting client for one event.
type ClientFactory func(ctx context.Context, event *core.GitHubEvent) (github.Client, error)

// ProviderFactory builds the model backend for one review.
type ProviderFactory func() (llm.Provider, error)

// ReviewJob reviews the pull request named by an event. Every run gets its own
// client and provider so concurrent reviews share nothing but configuration.
type ReviewJob struct {
	cfg         *config.Config
	newClient   ClientFactory
	newProvider ProviderFactory
	logger      *slog.Logger
}

// NewReviewJob creates a ReviewJob that authenticates and selects the
// provider from cfg.
func NewReviewJob(cfg *config.Config, logger *slog.Logger) *ReviewJob {
	return NewReviewJobWithFactories(cfg,
		func(ctx context.Context, event *core.GitHubEvent) (github.Client, error) {
			return github.NewClient(ctx, cfg, event.InstallationID, logger)
		},
		func() (llm.Provider, error) {
			return llm.NewProvider(cfg.AI, logger, llm.WithContentLimit(cfg.Review.MaxContentChars))
		},
		logger,
	)
}

// NewReviewJobWithFactories creates a ReviewJob with custom client and
// provider construction.
func NewReviewJobWithFactories(cfg *config.Config, newClient ClientFactory, newProvider ProviderFactory, logger *slog.Logger) *ReviewJob {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReviewJob{cfg: cfg, newClient: newClient, newProvider: newProvider, logger: logger}
}

// Run executes the code review for a given event.
func (j *ReviewJob) Run(ctx context.Context, event *core.GitHubEvent) error {
	if err := validateEvent(event); err != nil {
		j.logger.Error("input validation failed", "error", err)
		return fmt.Errorf("input validation failed: %w", err)
	}

	j.logger.Info("starting review job", "repo", event.RepoFullName, "pr", event.PRNumber, "trigger", event.Trigger)

	client, err := j.newClient(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}
	provider, err := j.newProvider()
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}

	reviewer := review.NewReviewer(client, provider, j.logger,
		review.WithOffDiffFilter(j.cfg.Review.DropOffDiffComments))
	result, err := reviewer.Review(ctx, event.RepoOwner, event.RepoName, event.PRNumber)
	if err != nil {
		return err
	}

	j.logger.Info("review job completed successfully",
		"repo", event.RepoFullName,
		"pr", event.PRNumber,
		"rating", result.Summary.OverallRating,
	)
	return nil
}

func validateEvent(event *core.GitHubEvent) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if event.RepoOwner == "" {
		return errors.New("repository owner cannot be empty")
	}
	if event.RepoName == "" {
		return errors.New("repository name cannot be empty")
	}
	if event.PRNumber <= 0 {
		return fmt.Errorf("pull request number must be positive, got: %d", event.PRNumber)
	}
	return nil
}
