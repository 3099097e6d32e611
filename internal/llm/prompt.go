package llm

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"unicode/utf8"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

//go:embed prompts/review.prompt
var reviewPromptText string

var reviewPrompt = template.Must(template.New("review").Parse(reviewPromptText))

// System instructions sent alongside the review prompt by backends that
// support a separate system role.
const (
	systemPrompt = "You are an expert code reviewer with deep knowledge of software engineering best practices, " +
		"security, and performance optimization. Provide thorough, constructive code reviews."
	jsonSystemPrompt = systemPrompt + " Always respond with valid JSON."
)

// DefaultContentLimit is the number of characters at which a file's full
// contents stop being sent to the model.
const DefaultContentLimit = 10000

// BuildReviewPrompt renders the provider-independent review prompt for pr.
// The output depends only on pr and contentLimit: file order is preserved, a
// diff block is emitted only for files with a patch and a content block only
// for files whose contents were fetched and are shorter than contentLimit
// characters. A contentLimit of zero or less includes contents of any size.
func BuildReviewPrompt(pr *core.PRContext, contentLimit int) (string, error) {
	view := *pr
	view.Files = make([]core.PRFile, len(pr.Files))
	for i, f := range pr.Files {
		if contentLimit > 0 && utf8.RuneCountInString(f.Contents) >= contentLimit {
			f.Contents = ""
		}
		view.Files[i] = f
	}

	var buf bytes.Buffer
	if err := reviewPrompt.Execute(&buf, &view); err != nil {
		return "", fmt.Errorf("failed to render review prompt: %w", err)
	}
	return buf.String(), nil
}
