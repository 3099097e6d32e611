package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/github"
)

var (
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	sideStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sectionStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240"))
)

// dryRunClient reads from GitHub like the real client but renders what would
// have been posted to out instead of writing to the pull request.
type dryRunClient struct {
	github.Client
	out      io.Writer
	renderer *glamour.TermRenderer
}

func newDryRunClient(client github.Client, out io.Writer) *dryRunClient {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		renderer = nil
	}
	return &dryRunClient{Client: client, out: out, renderer: renderer}
}

func (d *dryRunClient) PostInlineComments(_ context.Context, _, _ string, _ int, commitID string, comments []core.ReviewComment) error {
	fmt.Fprintln(d.out, sectionStyle.Render(fmt.Sprintf("💬 Inline comments (%d) at %s", len(comments), shortSHA(commitID))))
	for _, c := range comments {
		fmt.Fprintf(d.out, "%s %s\n", locationStyle.Render(fmt.Sprintf("%s:%d", c.Path, c.Line)), sideStyle.Render(string(c.Side)))
		fmt.Fprintln(d.out, d.render(c.Body))
	}
	return nil
}

func (d *dryRunClient) PostSummary(_ context.Context, _, _ string, _ int, body string) error {
	fmt.Fprintln(d.out, sectionStyle.Render("📋 Summary comment"))
	fmt.Fprintln(d.out, d.render(body))
	return nil
}

func (d *dryRunClient) render(markdown string) string {
	if d.renderer == nil {
		return markdown
	}
	out, err := d.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
