package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoConfig_Excludes(t *testing.T) {
	cfg := &RepoConfig{
		ExcludeDirs: []string{"vendor", "/dist/"},
		ExcludeExts: []string{".md", "lock"},
	}

	tests := []struct {
		filename string
		want     bool
	}{
		{"README.md", true},
		{"docs/guide.MD", true},
		{"yarn.lock", true},
		{"vendor/github.com/x/y.go", true},
		{"web/dist/app.js", true},
		{"src/main.go", false},
		{"distribution/main.go", false},
		{"src/markdown.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Excludes(tt.filename))
		})
	}
}

func TestRepoConfig_NilAndDefault(t *testing.T) {
	var nilCfg *RepoConfig
	assert.False(t, nilCfg.Excludes("README.md"))
	assert.False(t, DefaultRepoConfig().Excludes("README.md"))
}
