package llm

import (
	"errors"
	"fmt"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// ProviderError is returned when a model backend cannot be reached or answers
// with a non-success status. It matches core.ErrTransport under errors.Is.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Is reports every ProviderError as a transport failure.
func (e *ProviderError) Is(target error) bool {
	return target == core.ErrTransport
}

var errNoCandidates = errors.New("no candidates in response")

// IsAuthError reports whether err is a backend rejecting the credentials.
func IsAuthError(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.StatusCode == 401 || pe.StatusCode == 403
}
