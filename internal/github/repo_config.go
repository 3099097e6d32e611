package github

import (
	"context"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// loadRepoConfig reads .ai-reviewer.yml at ref. A missing or unreadable file
// yields the defaults so a broken config never blocks a review.
func (g *gitHubClient) loadRepoConfig(ctx context.Context, owner, repo, ref string) *core.RepoConfig {
	content, err := g.getFileContent(ctx, owner, repo, config.RepoConfigFile, ref)
	if err != nil {
		if !isNotFound(err) {
			g.logger.Warn("could not read repository config", "repo", owner+"/"+repo, "error", err)
		}
		return core.DefaultRepoConfig()
	}

	cfg, err := config.ParseRepoConfig([]byte(content))
	if err != nil {
		g.logger.Warn("invalid repository config, using defaults", "repo", owner+"/"+repo, "error", err)
		return core.DefaultRepoConfig()
	}
	return cfg
}
