package llm

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// fallbackSummaryLen is how much of an unparseable reply is kept as the summary.
const fallbackSummaryLen = 500

// emptyReply stands in for a backend answer that carried no text.
const emptyReply = "{}"

var (
	jsonFenceRegex = regexp.MustCompile("(?is)```json[ \t]*\r?\n(.*?)\r?\n[ \t]*```")
	anyFenceRegex  = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \t]*\r?\n(.*?)\r?\n[ \t]*```")

	errNotJSON         = errors.New("response is not valid JSON")
	errMissingSummary  = errors.New("response has no summary object")
	errMissingComments = errors.New("response has no comments array")
)

// ParseReview converts a model's raw answer into an AIReviewResult. It never
// fails: answers that are not JSON or miss the summary object or the comments
// array yield a neutral result carrying the start of the raw text. Fields of
// an otherwise valid answer are coerced to their expected types.
func ParseReview(raw string) *core.AIReviewResult {
	result, err := decodeReview(extractJSON(raw))
	if err != nil {
		return fallbackReview(raw)
	}
	return result
}

// extractJSON picks the JSON payload out of raw: a ```json fence first, then
// any fenced block, then the whole text.
func extractJSON(raw string) string {
	if m := jsonFenceRegex.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := anyFenceRegex.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

func decodeReview(payload string) (*core.AIReviewResult, error) {
	if !gjson.Valid(payload) {
		return nil, errNotJSON
	}
	root := gjson.Parse(payload)
	summary := root.Get("summary")
	if !summary.IsObject() {
		return nil, errMissingSummary
	}
	comments := root.Get("comments")
	if !comments.IsArray() {
		return nil, errMissingComments
	}

	result := &core.AIReviewResult{
		Summary: core.ReviewSummary{
			OverallRating:     rating(summary.Get("overallRating")),
			Summary:           text(summary.Get("summary")),
			SecurityIssues:    stringList(summary.Get("securityIssues")),
			PerformanceIssues: stringList(summary.Get("performanceIssues")),
			CodeQualityIssues: stringList(summary.Get("codeQualityIssues")),
			BestPractices:     stringList(summary.Get("bestPractices")),
			PositivePoints:    stringList(summary.Get("positivePoints")),
		},
		Comments: []core.ReviewComment{},
	}
	for _, c := range comments.Array() {
		comment, ok := reviewComment(c)
		if !ok {
			continue
		}
		result.Comments = append(result.Comments, comment)
	}
	return result, nil
}

// rating reads a numeric or numeric-string rating, rounds it and clamps it to
// the valid range. Anything else is the neutral default.
func rating(v gjson.Result) int {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return core.DefaultRating
		}
		f = parsed
	default:
		return core.DefaultRating
	}
	if math.IsNaN(f) {
		return core.DefaultRating
	}
	f = math.Round(min(max(f, core.MinRating), core.MaxRating))
	return int(f)
}

// text returns strings as they are and any other scalar or JSON value in its
// raw form. Missing and null values are empty.
func text(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Null:
		return ""
	default:
		return strings.TrimSpace(v.Raw)
	}
}

// stringList accepts an array of strings, an array of mixed values or a single
// value. Empty entries are dropped and the result is never nil.
func stringList(v gjson.Result) []string {
	items := []string{}
	if !v.Exists() || v.Type == gjson.Null {
		return items
	}
	elems := []gjson.Result{v}
	if v.IsArray() {
		elems = v.Array()
	}
	for _, e := range elems {
		if s := strings.TrimSpace(text(e)); s != "" {
			items = append(items, s)
		}
	}
	return items
}

// reviewComment reads one inline comment. Entries that are not objects or
// lack a path or a positive line cannot be anchored and are skipped. An
// unknown side becomes RIGHT.
func reviewComment(v gjson.Result) (core.ReviewComment, bool) {
	if !v.IsObject() {
		return core.ReviewComment{}, false
	}
	path := strings.TrimSpace(text(v.Get("path")))
	line := int(v.Get("line").Int())
	if path == "" || line < 1 {
		return core.ReviewComment{}, false
	}
	side := core.Side(strings.ToUpper(strings.TrimSpace(text(v.Get("side")))))
	if !side.Valid() {
		side = core.SideRight
	}
	return core.ReviewComment{
		Path: path,
		Line: line,
		Side: side,
		Body: text(v.Get("body")),
	}, true
}

func fallbackReview(raw string) *core.AIReviewResult {
	return &core.AIReviewResult{
		Summary: core.ReviewSummary{
			OverallRating:     core.DefaultRating,
			Summary:           truncateRunes(raw, fallbackSummaryLen),
			SecurityIssues:    []string{},
			PerformanceIssues: []string{},
			CodeQualityIssues: []string{},
			BestPractices:     []string{},
			PositivePoints:    []string{},
		},
		Comments: []core.ReviewComment{},
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
