// Package core defines the domain types and contracts shared by the review
// pipeline, the hosting client, and the webhook service.
package core

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v73/github"
)

// GitHubEvent represents a simplified, internal view of a GitHub webhook event
// that should trigger a review.
type GitHubEvent struct {
	RepoOwner    string
	RepoName     string
	RepoFullName string

	PRNumber int
	HeadSHA  string

	// Trigger is the webhook action or command that produced the event.
	Trigger        string
	InstallationID int64
}

// reviewActions are the pull_request actions that start a review.
var reviewActions = map[string]bool{
	"opened":      true,
	"synchronize": true,
	"reopened":    true,
}

// EventFromPullRequest converts a pull_request webhook into a GitHubEvent.
// Only opened, synchronize and reopened actions are accepted.
func EventFromPullRequest(event *github.PullRequestEvent) (*GitHubEvent, error) {
	action := event.GetAction()
	if !reviewActions[action] {
		return nil, fmt.Errorf("pull request action %q does not trigger a review", action)
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository or owner information is missing from the event")
	}

	number := event.GetNumber()
	if number <= 0 {
		number = event.GetPullRequest().GetNumber()
	}
	if number <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", number)
	}

	return &GitHubEvent{
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		PRNumber:       number,
		HeadSHA:        event.GetPullRequest().GetHead().GetSHA(),
		Trigger:        action,
		InstallationID: event.GetInstallation().GetID(),
	}, nil
}

// EventFromIssueComment transforms a "/review" comment on a pull request into
// a GitHubEvent. Comments on plain issues and any other text are rejected.
func EventFromIssueComment(event *github.IssueCommentEvent) (*GitHubEvent, error) {
	if !event.GetIssue().IsPullRequest() {
		return nil, fmt.Errorf("comment is not on a pull request")
	}
	if event.GetAction() != "" && event.GetAction() != "created" {
		return nil, fmt.Errorf("comment action %q is ignored", event.GetAction())
	}
	if !strings.EqualFold(strings.TrimSpace(event.GetComment().GetBody()), "/review") {
		return nil, fmt.Errorf("comment is not a review command")
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository or owner information is missing from the event")
	}

	prNumber := event.GetIssue().GetNumber()
	if prNumber <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", prNumber)
	}

	return &GitHubEvent{
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		PRNumber:       prNumber,
		Trigger:        "/review",
		InstallationID: event.GetInstallation().GetID(),
	}, nil
}
