// Package gitutil parses the ways a pull request can be named on the command line.
package gitutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// prURLRegex accepts github.com and GitHub Enterprise hosts, with or without
// a scheme, optionally followed by a PR tab such as /files.
var prURLRegex = regexp.MustCompile(`^(?:https?://)?[^/]+/([^/]+)/([^/]+)/pull/(\d+)(?:/(?:files|commits|checks))?$`)

var repoNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ParsePullRequestURL parses a GitHub Pull Request URL and extracts the owner, repo, and PR number.
// Supported format: https://{host}/{owner}/{repo}/pull/{number}
func ParsePullRequestURL(url string) (owner, repo string, prNumber int, err error) {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")

	matches := prURLRegex.FindStringSubmatch(url)
	if len(matches) != 4 {
		return "", "", 0, fmt.Errorf("invalid pull request URL format: %s", url)
	}

	prNumber, err = ParsePRNumber(matches[3])
	if err != nil {
		return "", "", 0, err
	}
	return matches[1], matches[2], prNumber, nil
}

// ParseRepository splits an "owner/repo" string such as GITHUB_REPOSITORY.
func ParseRepository(fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(fullName), "/")
	if !ok || !repoNameRegex.MatchString(owner) || !repoNameRegex.MatchString(repo) {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", fullName)
	}
	return owner, repo, nil
}

// ParsePRNumber parses a positive pull request number.
func ParsePRNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid PR number '%s': %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid PR number '%s': must be positive", s)
	}
	return n, nil
}
