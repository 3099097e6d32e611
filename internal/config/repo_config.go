package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// RepoConfigFile is the per-repository settings file read at the PR head.
const RepoConfigFile = ".ai-reviewer.yml"

var ErrConfigParsing = errors.New("config parsing failed")

// ParseRepoConfig parses the contents of a .ai-reviewer.yml file. Empty input
// yields the defaults.
func ParseRepoConfig(data []byte) (*core.RepoConfig, error) {
	cfg := core.DefaultRepoConfig()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return cfg, nil
}
