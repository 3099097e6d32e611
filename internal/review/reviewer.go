package review

import (
	"context"
	"log/slog"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/github"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/llm"
)

// Reviewer runs one pull request through the pipeline: fetch the context, ask
// the provider, then publish inline comments and the summary.
type Reviewer struct {
	client      github.Client
	provider    llm.Provider
	logger      *slog.Logger
	dropOffDiff bool
}

// Option customizes a Reviewer.
type Option func(*Reviewer)

// WithOffDiffFilter drops comments that do not land on a line of the diff
// before they are posted.
func WithOffDiffFilter(enabled bool) Option {
	return func(r *Reviewer) { r.dropOffDiff = enabled }
}

// NewReviewer creates a Reviewer bound to a single hosting client and provider.
func NewReviewer(client github.Client, provider llm.Provider, logger *slog.Logger, opts ...Option) *Reviewer {
	r := &Reviewer{client: client, provider: provider, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Review performs the review and returns what the provider produced, less any
// comments the off-diff filter dropped from publication. Steps
// run strictly in order and the first failing step's error is returned as is;
// nothing after it runs.
func (r *Reviewer) Review(ctx context.Context, owner, repo string, number int) (*core.AIReviewResult, error) {
	log := r.logger.With("owner", owner, "repo", repo, "pr", number)
	log.Info("starting PR review", "provider", r.provider.Name())

	pr, err := r.client.GetPRContext(ctx, owner, repo, number)
	if err != nil {
		log.Error("failed to fetch PR context", "error", err)
		return nil, err
	}
	log.Info("PR context fetched", "files", len(pr.Files), "title", pr.Title)

	result, err := r.provider.ReviewPR(ctx, pr)
	if err != nil {
		log.Error("AI review failed", "error", err)
		return nil, err
	}
	log.Info("AI review completed", "rating", result.Summary.OverallRating, "comments", len(result.Comments))

	commitID, err := r.client.GetHeadCommitID(ctx, owner, repo, number)
	if err != nil {
		log.Error("failed to get head commit", "error", err)
		return nil, err
	}

	published := result
	if r.dropOffDiff {
		if kept := DropOffDiffComments(pr, result.Comments, log); len(kept) != len(result.Comments) {
			filtered := *result
			filtered.Comments = kept
			published = &filtered
		}
	}
	if len(published.Comments) > 0 {
		if err := r.client.PostInlineComments(ctx, owner, repo, number, commitID, BrandComments(published.Comments)); err != nil {
			log.Error("failed to post inline comments", "error", err)
			return nil, err
		}
	}

	if err := r.client.PostSummary(ctx, owner, repo, number, FormatSummary(pr, published)); err != nil {
		log.Error("failed to post summary", "error", err)
		return nil, err
	}

	log.Info("PR review completed successfully")
	return published, nil
}
