package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GITHUB_TOKEN", "GITHUB_APP_ID", "GITHUB_PRIVATE_KEY_PATH", "GITHUB_WEBHOOK_SECRET",
		"AI_PROVIDER", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"OPENAI_MODEL", "MAX_FILES_TO_REVIEW", "MAX_FILE_SIZE_KB", "REVIEW_SEVERITY",
		"AI_REQUEST_TIMEOUT", "PORT", "MAX_CONTENT_CHARS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "gpt-4-turbo-preview", cfg.AI.OpenAI.Model)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Review.MaxFiles)
	assert.Equal(t, 500, cfg.Review.MaxFileSizeKB)
	assert.Equal(t, 5000, cfg.Review.ContentChangeLimit())
	assert.Equal(t, 10000, cfg.Review.MaxContentChars)
	assert.Equal(t, "medium", cfg.Review.Severity)
	assert.Equal(t, 5*time.Minute, cfg.AI.RequestTimeout)
	assert.False(t, cfg.GitHub.UsesApp())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "GITHUB_TOKEN=ghp_file\nAI_PROVIDER=gemini\nGEMINI_API_KEY=g-key\nMAX_FILES_TO_REVIEW=7\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(viper.New(), envFile)
	require.NoError(t, err)

	assert.Equal(t, "ghp_file", cfg.GitHub.Token)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "g-key", cfg.AI.Gemini.APIKey)
	assert.Equal(t, 7, cfg.Review.MaxFiles)

	active, err := cfg.AI.Active()
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", active.Model)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing github credentials",
			env:  map[string]string{"OPENAI_API_KEY": "sk"},
		},
		{
			name: "unsupported provider",
			env:  map[string]string{"GITHUB_TOKEN": "t", "AI_PROVIDER": "llama"},
		},
		{
			name: "missing provider key",
			env:  map[string]string{"GITHUB_TOKEN": "t", "AI_PROVIDER": "anthropic"},
		},
		{
			name: "invalid severity",
			env:  map[string]string{"GITHUB_TOKEN": "t", "OPENAI_API_KEY": "sk", "REVIEW_SEVERITY": "extreme"},
		},
		{
			name: "non-positive max files",
			env:  map[string]string{"GITHUB_TOKEN": "t", "OPENAI_API_KEY": "sk", "MAX_FILES_TO_REVIEW": "0"},
		},
		{
			name: "negative content limit",
			env:  map[string]string{"GITHUB_TOKEN": "t", "OPENAI_API_KEY": "sk", "MAX_CONTENT_CHARS": "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New(), "")
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrConfiguration)
		})
	}
}

func TestGitHubConfig_UsesApp(t *testing.T) {
	assert.True(t, GitHubConfig{AppID: 1, PrivateKeyPath: "key.pem"}.UsesApp())
	assert.False(t, GitHubConfig{AppID: 1}.UsesApp())
	assert.False(t, GitHubConfig{PrivateKeyPath: "key.pem"}.UsesApp())
}

func TestParseRepoConfig(t *testing.T) {
	cfg, err := ParseRepoConfig([]byte("exclude_dirs: [vendor]\nexclude_exts: [.md]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor"}, cfg.ExcludeDirs)
	assert.Equal(t, []string{".md"}, cfg.ExcludeExts)

	cfg, err = ParseRepoConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludeDirs)

	_, err = ParseRepoConfig([]byte("exclude_dirs: {broken"))
	assert.ErrorIs(t, err, ErrConfigParsing)
}
