package review

import (
	"log/slog"
	"strings"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/github"
)

// DropOffDiffComments keeps only comments that target a line present on the
// requested side of their file's patch. GitHub rejects the whole review when
// a single comment points outside the diff.
func DropOffDiffComments(pr *core.PRContext, comments []core.ReviewComment, logger *slog.Logger) []core.ReviewComment {
	lines := make(map[string]github.CommentableLines, len(pr.Files))
	for _, f := range pr.Files {
		if f.Patch != "" {
			lines[f.Filename] = github.ParseCommentableLines(f.Patch)
		}
	}

	kept := make([]core.ReviewComment, 0, len(comments))
	for _, c := range comments {
		fileLines, ok := lines[strings.TrimPrefix(c.Path, "./")]
		if !ok || !fileLines.Allows(c.Side, c.Line) {
			logger.Warn("dropping comment outside the diff", "path", c.Path, "line", c.Line, "side", c.Side)
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
