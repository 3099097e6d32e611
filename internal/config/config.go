// Package config loads process-wide settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/logger"
)

// Supported AI providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	AI      AIConfig
	Review  ReviewConfig
	Logging logger.Config
}

type ServerConfig struct {
	Port       string
	MaxWorkers int
}

type GitHubConfig struct {
	Token          string
	WebhookSecret  string
	AppID          int64
	PrivateKeyPath string
	APIURL         string
}

// UsesApp reports whether reviews should authenticate as a GitHub App installation.
func (g GitHubConfig) UsesApp() bool {
	return g.AppID != 0 && g.PrivateKeyPath != ""
}

// ProviderConfig holds the credentials and model of a single AI backend.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type AIConfig struct {
	Provider       string
	OpenAI         ProviderConfig
	Anthropic      ProviderConfig
	Gemini         ProviderConfig
	RequestTimeout time.Duration
}

// Active returns the settings of the selected provider.
func (a AIConfig) Active() (ProviderConfig, error) {
	switch a.Provider {
	case ProviderOpenAI:
		return a.OpenAI, nil
	case ProviderAnthropic:
		return a.Anthropic, nil
	case ProviderGemini:
		return a.Gemini, nil
	default:
		return ProviderConfig{}, fmt.Errorf("%w: unsupported AI provider: %q", core.ErrConfiguration, a.Provider)
	}
}

type ReviewConfig struct {
	MaxFiles      int
	MaxFileSizeKB int
	// ContentChangesPerKB converts MaxFileSizeKB into the change-count limit
	// below which full file contents are fetched.
	ContentChangesPerKB int
	// MaxContentChars is the exclusive upper bound on the length of file
	// contents sent to the model. Zero sends contents of any length.
	MaxContentChars     int
	Severity            string
	DropOffDiffComments bool
}

// ContentChangeLimit is the exclusive upper bound on a file's change count for
// its contents to be included in the prompt.
func (r ReviewConfig) ContentChangeLimit() int {
	return r.MaxFileSizeKB * r.ContentChangesPerKB
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates required fields.
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper(), ".env")
}

// Load populates a Config from v and validates it. envFile is optional; a
// missing file is not an error.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	cfg, err := Read(v, envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read populates a Config from v without validating it, for commands that
// need only part of the settings.
func Read(v *viper.Viper, envFile string) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: reading %s: %w", core.ErrConfiguration, envFile, err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       v.GetString("PORT"),
			MaxWorkers: v.GetInt("MAX_WORKERS"),
		},
		GitHub: GitHubConfig{
			Token:          v.GetString("GITHUB_TOKEN"),
			WebhookSecret:  v.GetString("GITHUB_WEBHOOK_SECRET"),
			AppID:          v.GetInt64("GITHUB_APP_ID"),
			PrivateKeyPath: v.GetString("GITHUB_PRIVATE_KEY_PATH"),
			APIURL:         v.GetString("GITHUB_API_URL"),
		},
		AI: AIConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("AI_PROVIDER"))),
			OpenAI: ProviderConfig{
				APIKey:  v.GetString("OPENAI_API_KEY"),
				Model:   v.GetString("OPENAI_MODEL"),
				BaseURL: v.GetString("OPENAI_BASE_URL"),
			},
			Anthropic: ProviderConfig{
				APIKey:  v.GetString("ANTHROPIC_API_KEY"),
				Model:   v.GetString("ANTHROPIC_MODEL"),
				BaseURL: v.GetString("ANTHROPIC_BASE_URL"),
			},
			Gemini: ProviderConfig{
				APIKey:  v.GetString("GEMINI_API_KEY"),
				Model:   v.GetString("GEMINI_MODEL"),
				BaseURL: v.GetString("GEMINI_BASE_URL"),
			},
			RequestTimeout: v.GetDuration("AI_REQUEST_TIMEOUT"),
		},
		Review: ReviewConfig{
			MaxFiles:            v.GetInt("MAX_FILES_TO_REVIEW"),
			MaxFileSizeKB:       v.GetInt("MAX_FILE_SIZE_KB"),
			ContentChangesPerKB: v.GetInt("CONTENT_CHANGES_PER_KB"),
			MaxContentChars:     v.GetInt("MAX_CONTENT_CHARS"),
			Severity:            strings.ToLower(v.GetString("REVIEW_SEVERITY")),
			DropOffDiffComments: v.GetBool("REVIEW_DROP_OFF_DIFF_COMMENTS"),
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("MAX_WORKERS", 5)
	v.SetDefault("GITHUB_PRIVATE_KEY_PATH", "")
	v.SetDefault("GITHUB_API_URL", "")
	v.SetDefault("AI_PROVIDER", ProviderOpenAI)
	v.SetDefault("OPENAI_MODEL", "gpt-4-turbo-preview")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022")
	v.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("AI_REQUEST_TIMEOUT", 5*time.Minute)
	v.SetDefault("MAX_FILES_TO_REVIEW", 20)
	v.SetDefault("MAX_FILE_SIZE_KB", 500)
	v.SetDefault("CONTENT_CHANGES_PER_KB", 10)
	v.SetDefault("MAX_CONTENT_CHARS", 10000)
	v.SetDefault("REVIEW_SEVERITY", "medium")
	v.SetDefault("REVIEW_DROP_OFF_DIFF_COMMENTS", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
}

// Validate checks that the configuration can run a review. Every failure wraps
// core.ErrConfiguration.
func (c *Config) Validate() error {
	if c.GitHub.Token == "" && !c.GitHub.UsesApp() {
		return fmt.Errorf("%w: GITHUB_TOKEN is required (or GITHUB_APP_ID with GITHUB_PRIVATE_KEY_PATH)", core.ErrConfiguration)
	}

	active, err := c.AI.Active()
	if err != nil {
		return err
	}
	if active.APIKey == "" {
		return fmt.Errorf("%w: %s_API_KEY is required when AI_PROVIDER is %s",
			core.ErrConfiguration, strings.ToUpper(c.AI.Provider), c.AI.Provider)
	}
	if active.Model == "" && c.AI.Provider != ProviderGemini {
		return fmt.Errorf("%w: %s_MODEL must not be empty", core.ErrConfiguration, strings.ToUpper(c.AI.Provider))
	}

	if c.Review.MaxFiles <= 0 {
		return fmt.Errorf("%w: MAX_FILES_TO_REVIEW must be positive, got %d", core.ErrConfiguration, c.Review.MaxFiles)
	}
	if c.Review.MaxFileSizeKB <= 0 {
		return fmt.Errorf("%w: MAX_FILE_SIZE_KB must be positive, got %d", core.ErrConfiguration, c.Review.MaxFileSizeKB)
	}
	if c.Review.ContentChangesPerKB <= 0 {
		return fmt.Errorf("%w: CONTENT_CHANGES_PER_KB must be positive, got %d", core.ErrConfiguration, c.Review.ContentChangesPerKB)
	}
	if c.Review.MaxContentChars < 0 {
		return fmt.Errorf("%w: MAX_CONTENT_CHARS must not be negative, got %d", core.ErrConfiguration, c.Review.MaxContentChars)
	}
	switch c.Review.Severity {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("%w: REVIEW_SEVERITY must be low, medium or high, got %q", core.ErrConfiguration, c.Review.Severity)
	}

	if c.Server.MaxWorkers <= 0 {
		slog.Warn("MAX_WORKERS must be positive, defaulting to 1", "provided", c.Server.MaxWorkers)
		c.Server.MaxWorkers = 1
	}
	return nil
}
