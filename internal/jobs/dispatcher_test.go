package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Run(context.Context, *core.GitHubEvent) error {
	j.runs.Add(1)
	return nil
}

// blockingJob holds every worker until release is closed.
type blockingJob struct {
	started chan struct{}
	release chan struct{}
}

func (j *blockingJob) Run(context.Context, *core.GitHubEvent) error {
	j.started <- struct{}{}
	<-j.release
	return nil
}

func event(n int) *core.GitHubEvent {
	return &core.GitHubEvent{RepoOwner: "acme", RepoName: "widgets", RepoFullName: "acme/widgets", PRNumber: n}
}

func TestDispatcher_RunsAllJobs(t *testing.T) {
	job := &countingJob{}
	d := NewDispatcher(job, 3, discardLogger())

	for i := 1; i <= 10; i++ {
		require.NoError(t, d.Dispatch(context.Background(), event(i)))
	}
	d.Stop()

	assert.Equal(t, int32(10), job.runs.Load())
}

func TestDispatcher_QueueFull(t *testing.T) {
	job := &blockingJob{started: make(chan struct{}), release: make(chan struct{})}
	d := NewDispatcher(job, 1, discardLogger())

	require.NoError(t, d.Dispatch(context.Background(), event(0)))
	<-job.started

	for i := 1; i <= queueSize; i++ {
		require.NoError(t, d.Dispatch(context.Background(), event(i)))
	}
	err := d.Dispatch(context.Background(), event(queueSize+1))
	assert.ErrorIs(t, err, core.ErrQueueFull)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range queueSize {
			<-job.started
		}
	}()
	close(job.release)
	wg.Wait()
	d.Stop()
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(&countingJob{}, 0, discardLogger())
	d.Stop()
	d.Stop()

	assert.ErrorIs(t, d.Dispatch(context.Background(), event(1)), core.ErrQueueFull)
}
