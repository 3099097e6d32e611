// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"
	"golang.org/x/sync/errgroup"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// contentFetchWorkers bounds the concurrent file-content requests per review.
const contentFetchWorkers = 4

// Client is the hosting API surface the review pipeline depends on.
//
//go:generate mockgen -destination=../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	GetPRContext(ctx context.Context, owner, repo string, number int) (*core.PRContext, error)
	GetHeadCommitID(ctx context.Context, owner, repo string, number int) (string, error)
	PostInlineComments(ctx context.Context, owner, repo string, number int, commitID string, comments []core.ReviewComment) error
	PostSummary(ctx context.Context, owner, repo string, number int, body string) error
}

type gitHubClient struct {
	client *github.Client
	limits config.ReviewConfig
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client. limits decide how many
// files are reviewed and which ones get their full contents attached.
func NewGitHubClient(client *github.Client, limits config.ReviewConfig, logger *slog.Logger) Client {
	return &gitHubClient{client: client, limits: limits, logger: logger}
}

// GetPRContext collects the pull request metadata and its changed files.
// Files excluded by the repository's .ai-reviewer.yml are dropped, at most
// MaxFiles are kept, and contents are fetched at the head commit for files
// that are not removed and whose change count is under the content limit.
func (g *gitHubClient) GetPRContext(ctx context.Context, owner, repo string, number int) (*core.PRContext, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, transportErr("get pull request", err)
	}
	headSHA := pr.GetHead().GetSHA()

	repoCfg := g.loadRepoConfig(ctx, owner, repo, headSHA)

	files, err := g.listFiles(ctx, owner, repo, number, repoCfg)
	if err != nil {
		return nil, err
	}

	g.fetchContents(ctx, owner, repo, headSHA, files)

	return &core.PRContext{
		Owner:       owner,
		Repo:        repo,
		PullNumber:  number,
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
		Files:       files,
	}, nil
}

// listFiles pages through the changed files in API order until MaxFiles
// reviewable files are collected.
func (g *gitHubClient) listFiles(ctx context.Context, owner, repo string, number int, repoCfg *core.RepoConfig) ([]core.PRFile, error) {
	limit := g.limits.MaxFiles
	perPage := min(limit, 100)
	opts := &github.ListOptions{PerPage: perPage}

	var files []core.PRFile
	for {
		page, resp, err := g.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, transportErr("list pull request files", err)
		}

		for _, f := range page {
			if repoCfg.Excludes(f.GetFilename()) {
				g.logger.Debug("skipping excluded file", "file", f.GetFilename())
				continue
			}
			files = append(files, core.PRFile{
				Filename:  f.GetFilename(),
				Status:    core.FileStatus(f.GetStatus()),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
				Changes:   f.GetChanges(),
				Patch:     f.GetPatch(),
			})
			if len(files) == limit {
				return files, nil
			}
		}

		if resp.NextPage == 0 {
			return files, nil
		}
		opts.Page = resp.NextPage
	}
}

// fetchContents fills in Contents for eligible files in place. Failures are
// logged and leave the contents empty.
func (g *gitHubClient) fetchContents(ctx context.Context, owner, repo, ref string, files []core.PRFile) {
	threshold := g.limits.ContentChangeLimit()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(contentFetchWorkers)

	for i := range files {
		f := &files[i]
		if f.Status == core.FileRemoved || f.Changes >= threshold {
			continue
		}
		eg.Go(func() error {
			content, err := g.getFileContent(egCtx, owner, repo, f.Filename, ref)
			if err != nil {
				g.logger.Warn("could not fetch file contents", "file", f.Filename, "error", err)
				return nil
			}
			f.Contents = content
			return nil
		})
	}
	_ = eg.Wait()
}

func (g *gitHubClient) getFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := g.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return file.GetContent()
}

// GetHeadCommitID returns the SHA of the pull request's head commit.
func (g *gitHubClient) GetHeadCommitID(ctx context.Context, owner, repo string, number int) (string, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return "", transportErr("get pull request", err)
	}
	return pr.GetHead().GetSHA(), nil
}

// PostInlineComments submits all comments as a single COMMENT review pinned
// to commitID. An empty slice posts nothing.
func (g *gitHubClient) PostInlineComments(ctx context.Context, owner, repo string, number int, commitID string, comments []core.ReviewComment) error {
	if len(comments) == 0 {
		return nil
	}

	ghComments := make([]*github.DraftReviewComment, 0, len(comments))
	for _, c := range comments {
		ghComments = append(ghComments, &github.DraftReviewComment{
			Path: github.Ptr(c.Path),
			Line: github.Ptr(c.Line),
			Side: github.Ptr(string(c.Side)),
			Body: github.Ptr(c.Body),
		})
	}

	review := &github.PullRequestReviewRequest{
		CommitID: github.Ptr(commitID),
		Body:     github.Ptr(InlineReviewBody(len(comments))),
		Event:    github.Ptr("COMMENT"),
		Comments: ghComments,
	}

	if _, _, err := g.client.PullRequests.CreateReview(ctx, owner, repo, number, review); err != nil {
		g.logger.Error("failed to create pull request review", "owner", owner, "repo", repo, "pr", number, "error", err)
		return transportErr("create review", err)
	}
	g.logger.Info("posted inline comments", "owner", owner, "repo", repo, "pr", number, "count", len(comments))
	return nil
}

// PostSummary adds body as a regular conversation comment on the pull request.
func (g *gitHubClient) PostSummary(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	if _, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, comment); err != nil {
		g.logger.Error("failed to create comment", "owner", owner, "repo", repo, "pr", number, "error", err)
		return transportErr("create comment", err)
	}
	g.logger.Info("posted review summary", "owner", owner, "repo", repo, "pr", number)
	return nil
}

// InlineReviewBody is the top-level text of the review that carries the
// inline comments.
func InlineReviewBody(count int) string {
	return fmt.Sprintf("## 🤖 AI Code Reviewer\n\nFound %d issue(s) that need attention. See inline comments below for details.", count)
}

func transportErr(op string, err error) error {
	return fmt.Errorf("%w: github %s: %w", core.ErrTransport, op, err)
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
