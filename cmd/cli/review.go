package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/github"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/gitutil"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/llm"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/logger"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/review"
)

var (
	reviewOwner string
	reviewRepo  string
	reviewPR    int
	dryRun      bool
	verbose     bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-url]",
	Short: "Review a GitHub Pull Request and post the results",
	Long: `Review a GitHub Pull Request and post inline comments and a summary.

The pull request is taken from the URL argument, from --owner/--repo/--pr, or,
inside GitHub Actions, from GITHUB_REPOSITORY and PR_NUMBER.

Examples:
  ai-reviewer review https://github.com/owner/repo/pull/123
  ai-reviewer review --owner owner --repo repo --pr 123 --dry-run
  GITHUB_REPOSITORY=owner/repo PR_NUMBER=123 ai-reviewer review`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVar(&reviewOwner, "owner", "", "repository owner")
	reviewCmd.Flags().StringVar(&reviewRepo, "repo", "", "repository name")
	reviewCmd.Flags().IntVar(&reviewPR, "pr", 0, "pull request number")
	reviewCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the review instead of posting it")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")
	rootCmd.AddCommand(reviewCmd)
}

// stepTimer tracks timing for verbose output
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{totalSteps: totalSteps, verbose: verbose}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\n🔧 Step %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if t.verbose {
		elapsed := time.Since(t.start).Round(time.Millisecond)
		successColor.Printf("   ✓ Done (%s)\n", elapsed)
		for _, d := range details {
			dimColor.Printf("   └── %s\n", d)
		}
	}
}

// prTarget names the pull request to review.
type prTarget struct {
	owner  string
	repo   string
	number int
}

func (p prTarget) String() string {
	return fmt.Sprintf("%s/%s#%d", p.owner, p.repo, p.number)
}

// resolveTarget picks the pull request from the URL argument, the flags, or
// the GitHub Actions environment, in that order.
func resolveTarget(args []string, owner, repo string, number int, env func(string) string) (prTarget, error) {
	if len(args) == 1 {
		o, r, n, err := gitutil.ParsePullRequestURL(args[0])
		if err != nil {
			return prTarget{}, fmt.Errorf("%w\n\nExpected format: https://github.com/owner/repo/pull/123", err)
		}
		return prTarget{owner: o, repo: r, number: n}, nil
	}

	if owner != "" || repo != "" || number != 0 {
		if owner == "" || repo == "" || number <= 0 {
			return prTarget{}, errors.New("--owner, --repo and --pr must be given together")
		}
		return prTarget{owner: owner, repo: repo, number: number}, nil
	}

	fullName, prNumber := env("GITHUB_REPOSITORY"), env("PR_NUMBER")
	if fullName == "" || prNumber == "" {
		return prTarget{}, errors.New("no pull request given: pass a PR URL, --owner/--repo/--pr, or set GITHUB_REPOSITORY and PR_NUMBER")
	}
	o, r, err := gitutil.ParseRepository(fullName)
	if err != nil {
		return prTarget{}, err
	}
	n, err := gitutil.ParsePRNumber(prNumber)
	if err != nil {
		return prTarget{}, err
	}
	return prTarget{owner: o, repo: r, number: n}, nil
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	timer := newStepTimer(4, verbose)
	overallStart := time.Now()

	titleColor.Println("🤖 AI Code Reviewer - PR Review")

	timer.step("Loading configuration")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("%w\n\nTip: Set GITHUB_TOKEN, AI_PROVIDER and the matching <PROVIDER>_API_KEY", err)
	}
	log := logger.NewLogger(cfg.Logging, os.Stderr)
	timer.done("Provider: " + cfg.AI.Provider)

	timer.step("Resolving pull request")
	target, err := resolveTarget(args, reviewOwner, reviewRepo, reviewPR, viper.GetString)
	if err != nil {
		return err
	}
	dimColor.Printf("   Target: %s\n", target)
	timer.done()

	timer.step("Connecting to GitHub and " + cfg.AI.Provider)
	client, err := github.NewClient(ctx, cfg, 0, log)
	if err != nil {
		return err
	}
	provider, err := llm.NewProvider(cfg.AI, log, llm.WithContentLimit(cfg.Review.MaxContentChars))
	if err != nil {
		return err
	}
	if dryRun {
		client = newDryRunClient(client, cmd.OutOrStdout())
		warnColor.Println("   Dry run: nothing will be posted")
	}
	timer.done()

	timer.step("Reviewing")
	reviewer := review.NewReviewer(client, provider, log,
		review.WithOffDiffFilter(cfg.Review.DropOffDiffComments))
	result, err := reviewer.Review(ctx, target.owner, target.repo, target.number)
	if err != nil {
		if llm.IsAuthError(err) {
			return fmt.Errorf("%w\n\nTip: Check %s_API_KEY", err, strings.ToUpper(cfg.AI.Provider))
		}
		return err
	}
	timer.done()

	if verbose {
		dimColor.Printf("\n⏱️  Total time: %s\n", time.Since(overallStart).Round(time.Millisecond))
	}
	printOutcome(result, dryRun)
	return nil
}

func printOutcome(result *core.AIReviewResult, dryRun bool) {
	fmt.Println()
	rating := result.Summary.OverallRating
	ratingColor := errorColor
	switch review.RatingIndicator(rating) {
	case review.IndicatorGood:
		ratingColor = successColor
	case review.IndicatorFair:
		ratingColor = warnColor
	}
	boldColor.Print("Overall rating: ")
	ratingColor.Printf("%d/10\n", rating)
	dimColor.Printf("Inline comments: %d\n", len(result.Comments))

	if dryRun {
		successColor.Println("✅ Dry run complete")
		return
	}
	successColor.Println("✅ Review posted")
}
