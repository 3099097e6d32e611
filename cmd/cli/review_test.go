package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolveTarget(t *testing.T) {
	noEnv := envOf(nil)

	tests := []struct {
		name    string
		args    []string
		owner   string
		repo    string
		number  int
		env     func(string) string
		want    prTarget
		wantErr bool
	}{
		{
			name: "url argument",
			args: []string{"https://github.com/acme/widgets/pull/42"},
			env:  noEnv,
			want: prTarget{owner: "acme", repo: "widgets", number: 42},
		},
		{
			name:    "malformed url",
			args:    []string{"https://github.com/acme/widgets"},
			env:     noEnv,
			wantErr: true,
		},
		{
			name:   "flags",
			owner:  "acme",
			repo:   "widgets",
			number: 7,
			env:    noEnv,
			want:   prTarget{owner: "acme", repo: "widgets", number: 7},
		},
		{
			name:    "incomplete flags",
			owner:   "acme",
			number:  7,
			env:     noEnv,
			wantErr: true,
		},
		{
			name: "actions environment",
			env:  envOf(map[string]string{"GITHUB_REPOSITORY": "acme/widgets", "PR_NUMBER": "13"}),
			want: prTarget{owner: "acme", repo: "widgets", number: 13},
		},
		{
			name:    "bad PR_NUMBER",
			env:     envOf(map[string]string{"GITHUB_REPOSITORY": "acme/widgets", "PR_NUMBER": "abc"}),
			wantErr: true,
		},
		{
			name:    "nothing given",
			env:     noEnv,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTarget(tt.args, tt.owner, tt.repo, tt.number, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDryRunClient_PrintsInsteadOfPosting(t *testing.T) {
	var out bytes.Buffer
	// The embedded client is never touched by the overridden methods.
	client := newDryRunClient(nil, &out)

	err := client.PostInlineComments(context.Background(), "acme", "widgets", 1, "0123456789abcdef",
		[]core.ReviewComment{{Path: "main.go", Line: 12, Side: core.SideRight, Body: "nil check"}})
	require.NoError(t, err)
	require.NoError(t, client.PostSummary(context.Background(), "acme", "widgets", 1, "summary body"))

	printed := out.String()
	assert.Contains(t, printed, "main.go:12")
	assert.Contains(t, printed, "0123456")
	assert.Contains(t, printed, "check")
	assert.Contains(t, printed, "summary")
}
