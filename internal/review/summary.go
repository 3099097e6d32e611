package review

import (
	"fmt"
	"strings"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// Rating indicators, highest tier first.
const (
	IndicatorGood = "🟢"
	IndicatorFair = "🟡"
	IndicatorPoor = "🔴"
)

// RatingIndicator maps a 1-10 rating to its colour tier: 8 and above is good,
// 6 and 7 are fair, anything lower is poor.
func RatingIndicator(rating int) string {
	switch {
	case rating >= 8:
		return IndicatorGood
	case rating >= 6:
		return IndicatorFair
	default:
		return IndicatorPoor
	}
}

type section struct {
	title  string
	bullet string
	items  []string
}

// FormatSummary renders the markdown conversation comment for a review.
// Sections with no entries are left out.
func FormatSummary(pr *core.PRContext, result *core.AIReviewResult) string {
	s := result.Summary
	var sb strings.Builder

	sb.WriteString("# 🤖 AI Code Reviewer\n\n")
	sb.WriteString("> Automated code review powered by AI\n\n")
	fmt.Fprintf(&sb, "### %s Overall Rating: %d/10\n\n", RatingIndicator(s.OverallRating), s.OverallRating)
	sb.WriteString(s.Summary)
	sb.WriteString("\n\n")

	sections := []section{
		{title: "### 🔒 Security Issues", bullet: "- ⚠️ ", items: s.SecurityIssues},
		{title: "### ⚡ Performance Issues", bullet: "- ", items: s.PerformanceIssues},
		{title: "### 📝 Code Quality Issues", bullet: "- ", items: s.CodeQualityIssues},
		{title: "### 💡 Best Practice Suggestions", bullet: "- ", items: s.BestPractices},
		{title: "### ✅ Positive Points", bullet: "- ", items: s.PositivePoints},
	}
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		sb.WriteString(sec.title)
		sb.WriteString("\n")
		for _, item := range sec.items {
			sb.WriteString(sec.bullet)
			sb.WriteString(item)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n---\n")
	fmt.Fprintf(&sb, "📊 **Stats:** %d files changed | +%d -%d\n",
		len(pr.Files), pr.TotalAdditions(), pr.TotalDeletions())
	if n := len(result.Comments); n > 0 {
		fmt.Fprintf(&sb, "💬 **Inline Comments:** %d specific suggestions\n", n)
	}
	sb.WriteString("\n*Powered by AI Code Reviewer*")

	return sb.String()
}
