package core

import (
	"path"
	"strings"
)

// RepoConfig represents the structure of the .ai-reviewer.yml file.
type RepoConfig struct {
	// Directories skipped wherever they appear in a path.
	// Example: ["dist", "vendor", "docs"]
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// File extensions skipped. The leading dot is optional.
	// Example: [".md", "lock", ".log"]
	ExcludeExts []string `yaml:"exclude_exts"`
}

// DefaultRepoConfig returns a config with default values.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{
		ExcludeDirs: []string{},
		ExcludeExts: []string{},
	}
}

// Excludes reports whether filename should be left out of the review.
func (c *RepoConfig) Excludes(filename string) bool {
	if c == nil {
		return false
	}

	ext := strings.ToLower(path.Ext(filename))
	base := strings.ToLower(path.Base(filename))
	for _, e := range c.ExcludeExts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e || strings.HasSuffix(base, e) {
			return true
		}
	}

	dirs := strings.Split(path.Dir(filename), "/")
	for _, d := range c.ExcludeDirs {
		d = strings.Trim(strings.TrimSpace(d), "/")
		if d == "" {
			continue
		}
		for _, part := range dirs {
			if part == d {
				return true
			}
		}
	}
	return false
}
