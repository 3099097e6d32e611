package core

// Side tells which version of a file an inline comment refers to.
type Side string

const (
	// SideLeft is the pre-change (old) file.
	SideLeft Side = "LEFT"
	// SideRight is the post-change (new) file.
	SideRight Side = "RIGHT"
)

// Valid reports whether s is one of the two sides the hosting API accepts.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// ReviewSummary is the overall assessment returned by a provider.
// All list fields are non-nil after parsing.
type ReviewSummary struct {
	OverallRating     int      `json:"overallRating"`
	Summary           string   `json:"summary"`
	SecurityIssues    []string `json:"securityIssues"`
	PerformanceIssues []string `json:"performanceIssues"`
	CodeQualityIssues []string `json:"codeQualityIssues"`
	BestPractices     []string `json:"bestPractices"`
	PositivePoints    []string `json:"positivePoints"`
}

// ReviewComment is a single comment anchored to a file line. Body may start
// with a category tag such as "[SECURITY]".
type ReviewComment struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Side Side   `json:"side"`
	Body string `json:"body"`
}

// AIReviewResult is the normalized outcome of one model invocation.
type AIReviewResult struct {
	Summary  ReviewSummary   `json:"summary"`
	Comments []ReviewComment `json:"comments"`
}

const (
	MinRating = 1
	MaxRating = 10
	// DefaultRating is used when the model's answer could not be parsed.
	DefaultRating = 7
)
