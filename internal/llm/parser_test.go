package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

func sampleResult() *core.AIReviewResult {
	return &core.AIReviewResult{
		Summary: core.ReviewSummary{
			OverallRating:     8,
			Summary:           "Solid change with one injection risk.",
			SecurityIssues:    []string{"SQL built with string concatenation"},
			PerformanceIssues: []string{},
			CodeQualityIssues: []string{"handler is too long"},
			BestPractices:     []string{"use prepared statements"},
			PositivePoints:    []string{"good tests"},
		},
		Comments: []core.ReviewComment{
			{Path: "db/query.go", Line: 12, Side: core.SideRight, Body: "[SECURITY] Use a placeholder here."},
			{Path: "db/query.go", Line: 4, Side: core.SideLeft, Body: "Removed check was useful."},
		},
	}
}

func TestParseReview_RoundTrip(t *testing.T) {
	want := sampleResult()
	data, err := json.Marshal(want)
	require.NoError(t, err)
	payload := string(data)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare JSON", raw: payload},
		{name: "bare JSON with whitespace", raw: "\n  " + payload + "\n"},
		{name: "json fence", raw: "Here is the review:\n```json\n" + payload + "\n```\nThanks."},
		{name: "uppercase json fence", raw: "```JSON\n" + payload + "\n```"},
		{name: "unlabeled fence", raw: "```\n" + payload + "\n```"},
		{name: "json fence wins over earlier fence", raw: "```go\nfmt.Println()\n```\n```json\n" + payload + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReview(tt.raw)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ParseReview() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseReview_Fallback(t *testing.T) {
	long := strings.Repeat("x", 750)

	tests := []struct {
		name        string
		raw         string
		wantSummary string
	}{
		{name: "plain prose", raw: "Looks fine to me.", wantSummary: "Looks fine to me."},
		{name: "empty", raw: "", wantSummary: ""},
		{name: "empty object", raw: "{}", wantSummary: "{}"},
		{name: "missing comments", raw: `{"summary":{"overallRating":9}}`, wantSummary: `{"summary":{"overallRating":9}}`},
		{name: "missing summary", raw: `{"comments":[]}`, wantSummary: `{"comments":[]}`},
		{name: "comments not array", raw: `{"summary":{},"comments":{}}`, wantSummary: `{"summary":{},"comments":{}}`},
		{name: "broken JSON", raw: `{"summary":{"overallRating":9,`, wantSummary: `{"summary":{"overallRating":9,`},
		{name: "long text truncated", raw: long, wantSummary: long[:fallbackSummaryLen]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReview(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, core.DefaultRating, got.Summary.OverallRating)
			assert.Equal(t, tt.wantSummary, got.Summary.Summary)
			assert.Empty(t, got.Summary.SecurityIssues)
			assert.NotNil(t, got.Summary.SecurityIssues)
			assert.Empty(t, got.Summary.PerformanceIssues)
			assert.Empty(t, got.Summary.CodeQualityIssues)
			assert.Empty(t, got.Summary.BestPractices)
			assert.Empty(t, got.Summary.PositivePoints)
			assert.NotNil(t, got.Comments)
			assert.Empty(t, got.Comments)
		})
	}
}

func TestParseReview_FallbackTruncatesRunes(t *testing.T) {
	raw := strings.Repeat("é", 600)
	got := ParseReview(raw)
	assert.Equal(t, strings.Repeat("é", fallbackSummaryLen), got.Summary.Summary)
}

func TestParseReview_Normalizes(t *testing.T) {
	raw := `{
		"summary": {"overallRating": 15, "summary": "ok"},
		"comments": [
			{"path": "a.go", "line": 1, "side": "right", "body": "x"},
			{"path": "a.go", "line": 2, "side": "middle", "body": "y"},
			{"path": "a.go", "line": 3, "side": "LEFT", "body": "z"}
		]
	}`

	got := ParseReview(raw)

	assert.Equal(t, core.MaxRating, got.Summary.OverallRating)
	assert.Equal(t, "ok", got.Summary.Summary)
	assert.NotNil(t, got.Summary.SecurityIssues)
	assert.NotNil(t, got.Summary.PositivePoints)
	require.Len(t, got.Comments, 3)
	assert.Equal(t, core.SideRight, got.Comments[0].Side)
	assert.Equal(t, core.SideRight, got.Comments[1].Side)
	assert.Equal(t, core.SideLeft, got.Comments[2].Side)
}

func TestParseReview_RatingFloor(t *testing.T) {
	got := ParseReview(`{"summary":{"overallRating":0,"summary":"bad"},"comments":[]}`)
	assert.Equal(t, core.MinRating, got.Summary.OverallRating)
}

func TestParseReview_CoercesFieldTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *core.AIReviewResult
	}{
		{
			name: "float rating",
			raw:  `{"summary":{"overallRating":8.5,"summary":"ok"},"comments":[{"path":"a.go","line":3,"side":"RIGHT","body":"[BUG] x"}]}`,
			want: &core.AIReviewResult{
				Summary:  summaryOf(9, "ok"),
				Comments: []core.ReviewComment{{Path: "a.go", Line: 3, Side: core.SideRight, Body: "[BUG] x"}},
			},
		},
		{
			name: "string line and rating",
			raw:  `{"summary":{"overallRating":"6","summary":"ok"},"comments":[{"path":"a.go","line":"3","side":"left","body":"[BUG] x"}]}`,
			want: &core.AIReviewResult{
				Summary:  summaryOf(6, "ok"),
				Comments: []core.ReviewComment{{Path: "a.go", Line: 3, Side: core.SideLeft, Body: "[BUG] x"}},
			},
		},
		{
			name: "non-numeric rating",
			raw:  `{"summary":{"overallRating":"nine","summary":"ok"},"comments":[]}`,
			want: &core.AIReviewResult{Summary: summaryOf(core.DefaultRating, "ok"), Comments: []core.ReviewComment{}},
		},
		{
			name: "missing rating",
			raw:  `{"summary":{"summary":"ok"},"comments":[]}`,
			want: &core.AIReviewResult{Summary: summaryOf(core.DefaultRating, "ok"), Comments: []core.ReviewComment{}},
		},
		{
			name: "object and scalar list items",
			raw:  `{"summary":{"overallRating":7,"summary":"ok","securityIssues":[{"issue":"eval"},"xss",3,""],"positivePoints":"tidy"},"comments":[]}`,
			want: &core.AIReviewResult{
				Summary: func() core.ReviewSummary {
					s := summaryOf(7, "ok")
					s.SecurityIssues = []string{`{"issue":"eval"}`, "xss", "3"}
					s.PositivePoints = []string{"tidy"}
					return s
				}(),
				Comments: []core.ReviewComment{},
			},
		},
		{
			name: "unanchored comments skipped",
			raw:  `{"summary":{"overallRating":7,"summary":"ok"},"comments":["loose text",{"line":2,"body":"no path"},{"path":"a.go","body":"no line"},{"path":"a.go","line":2,"body":"kept"}]}`,
			want: &core.AIReviewResult{
				Summary:  summaryOf(7, "ok"),
				Comments: []core.ReviewComment{{Path: "a.go", Line: 2, Side: core.SideRight, Body: "kept"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReview(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseReview() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func summaryOf(rating int, text string) core.ReviewSummary {
	return core.ReviewSummary{
		OverallRating:     rating,
		Summary:           text,
		SecurityIssues:    []string{},
		PerformanceIssues: []string{},
		CodeQualityIssues: []string{},
		BestPractices:     []string{},
		PositivePoints:    []string{},
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no fence", raw: "  {\"a\":1}  ", want: `{"a":1}`},
		{name: "json fence", raw: "text\n```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "other fence", raw: "```javascript\n{\"a\":2}\n```", want: `{"a":2}`},
		{name: "crlf fence", raw: "```json\r\n{\"a\":3}\r\n```", want: `{"a":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.raw))
		})
	}
}
