package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ai-reviewer",
	Short: "ai-reviewer reviews GitHub pull requests with an LLM.",
	Long: `A CLI for the AI code reviewer. It fetches a pull request, asks the configured
AI provider (openai, anthropic or gemini) for a review, and posts inline comments
and a summary back to the pull request.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("github-token", "t", "", "GitHub token (GITHUB_TOKEN)")
	flags.StringP("provider", "p", "", "AI provider: openai, anthropic or gemini (AI_PROVIDER)")
	flags.String("model", "", "model for the selected provider (<PROVIDER>_MODEL)")
	flags.String("log-level", "", "log level: debug, info, warn or error (LOG_LEVEL)")

	bindFlag("GITHUB_TOKEN", "github-token")
	bindFlag("AI_PROVIDER", "provider")
	bindFlag("LOG_LEVEL", "log-level")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		slog.Error("Error binding flag", "flag", flag, "error", err)
		os.Exit(1)
	}
}

// initConfig reads ENV variables and applies flags that depend on other settings.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// --model applies to whichever provider ends up selected.
	if model, _ := rootCmd.PersistentFlags().GetString("model"); model != "" {
		provider := strings.ToUpper(viper.GetString("AI_PROVIDER"))
		if provider == "" {
			provider = "OPENAI"
		}
		viper.Set(provider+"_MODEL", model)
	}
}
