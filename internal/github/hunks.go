package github

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// CommentableLines holds the line numbers of a patch that accept an inline
// comment, per side of the diff.
type CommentableLines struct {
	Left  map[int]struct{}
	Right map[int]struct{}
}

// Allows reports whether line can be commented on the given side.
func (c CommentableLines) Allows(side core.Side, line int) bool {
	switch side {
	case core.SideLeft:
		_, ok := c.Left[line]
		return ok
	case core.SideRight:
		_, ok := c.Right[line]
		return ok
	default:
		return false
	}
}

// ParseCommentableLines walks a unified diff patch. Context lines are
// commentable on both sides, added lines on the right and removed lines on
// the left. Lines before the first valid hunk header are ignored.
func ParseCommentableLines(patch string) CommentableLines {
	lines := CommentableLines{
		Left:  make(map[int]struct{}),
		Right: make(map[int]struct{}),
	}

	oldLine, newLine := -1, -1
	for _, line := range strings.Split(patch, "\n") {
		if strings.HasPrefix(line, "@@") {
			oldLine, newLine = -1, -1
			m := hunkHeaderRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			oldStart, err1 := strconv.Atoi(m[1])
			newStart, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				continue
			}
			oldLine, newLine = oldStart, newStart
			continue
		}

		if newLine == -1 {
			continue
		}

		switch {
		case strings.HasPrefix(line, "+"):
			lines.Right[newLine] = struct{}{}
			newLine++
		case strings.HasPrefix(line, "-"):
			lines.Left[oldLine] = struct{}{}
			oldLine++
		case strings.HasPrefix(line, " "):
			lines.Left[oldLine] = struct{}{}
			lines.Right[newLine] = struct{}{}
			oldLine++
			newLine++
		}
	}
	return lines
}
