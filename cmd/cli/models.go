package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/llm"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/logger"
)

var showAllModels bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the Gemini models available to GEMINI_API_KEY",
	Long: `List the Gemini models that support content generation and show which one
the reviewer would pick for the configured GEMINI_MODEL.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	modelsCmd.Flags().BoolVar(&showAllModels, "all", false, "also list models that cannot generate content")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Read(viper.GetViper(), ".env")
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Logging, cmd.ErrOrStderr())

	gemini, err := llm.NewGemini(cfg.AI.Gemini, llm.NewHTTPClient(cfg.AI.RequestTimeout), log)
	if err != nil {
		return err
	}

	models, err := gemini.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list Gemini models: %w", err)
	}

	out := cmd.OutOrStdout()
	titleColor.Fprintf(out, "🔍 Gemini models (%d listed)\n\n", len(models))
	for _, m := range models {
		if !m.CanGenerate() && !showAllModels {
			continue
		}
		marker := "  "
		if m.CanGenerate() {
			marker = "✓ "
		}
		boldColor.Fprintf(out, "%s%s", marker, m.ShortName())
		if m.DisplayName != "" {
			dimColor.Fprintf(out, "  %s", m.DisplayName)
		}
		fmt.Fprintln(out)
	}

	selected, err := llm.SelectModel(cfg.AI.Gemini.Model, models)
	if err != nil {
		if errors.Is(err, core.ErrNoSuitableModel) {
			warnColor.Fprintln(out, "\nNo model supports content generation for this key.")
			return nil
		}
		return err
	}
	fmt.Fprintln(out)
	successColor.Fprintf(out, "Selected model: %s", selected)
	if cfg.AI.Gemini.Model != "" && selected != cfg.AI.Gemini.Model {
		warnColor.Fprintf(out, " (GEMINI_MODEL %q is not available)", cfg.AI.Gemini.Model)
	}
	fmt.Fprintln(out)
	return nil
}
