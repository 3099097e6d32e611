package core

import (
	"context"
)

// JobDispatcher defines the contract for a system that can accept and queue
// background jobs for asynchronous processing. This interface decouples the
// event source (e.g., a webhook handler) from the job execution mechanism.
type JobDispatcher interface {
	// Dispatch accepts a GitHubEvent and queues it for processing.
	// It returns ErrQueueFull when the queue cannot take more work.
	Dispatch(ctx context.Context, event *GitHubEvent) error
}

// Job represents a single, executable unit of work triggered by a GitHubEvent.
type Job interface {
	// Run executes the job's logic and returns an error if it did not complete.
	Run(ctx context.Context, event *GitHubEvent) error
}
