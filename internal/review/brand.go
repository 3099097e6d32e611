// Package review runs the review pipeline for one pull request and renders its
// results for the hosting API.
package review

import (
	"regexp"
	"strings"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// BrandHeader opens every inline comment posted by the reviewer.
const BrandHeader = "🤖 **AI Code Reviewer**"

var categoryTagRegex = regexp.MustCompile(`^\[([A-Z_]+)\]\s*`)

// BrandComment moves a leading category tag such as "[SECURITY]" out of the
// body into an attribution header. Path, line and side are left untouched.
// Branding an already branded comment returns it unchanged.
func BrandComment(c core.ReviewComment) core.ReviewComment {
	if strings.HasPrefix(c.Body, BrandHeader) {
		return c
	}

	header := BrandHeader
	body := c.Body
	if m := categoryTagRegex.FindStringSubmatch(body); m != nil {
		header += " *[" + m[1] + "]*"
		body = body[len(m[0]):]
	}
	c.Body = header + "\n\n" + body
	return c
}

// BrandComments brands each comment, keeping order. The input is not modified.
func BrandComments(comments []core.ReviewComment) []core.ReviewComment {
	branded := make([]core.ReviewComment, len(comments))
	for i, c := range comments {
		branded[i] = BrandComment(c)
	}
	return branded
}
