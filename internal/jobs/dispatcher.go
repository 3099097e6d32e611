// Package jobs runs reviews in the background, one independent pipeline per
// webhook event.
package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// queueSize is how many events may wait for a free worker.
const queueSize = 100

// Dispatcher implements core.JobDispatcher with a fixed pool of workers
// reading from a bounded queue.
type Dispatcher struct {
	job        core.Job
	jobQueue   chan *core.GitHubEvent
	maxWorkers int
	wg         sync.WaitGroup
	logger     *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher initializes a dispatcher with a worker pool.
// If maxWorkers is 0 or negative, it defaults to 1.
func NewDispatcher(job core.Job, maxWorkers int, logger *slog.Logger) *Dispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	d := &Dispatcher{
		job:        job,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan *core.GitHubEvent, queueSize),
		logger:     logger,
	}
	d.startWorkers()
	return d
}

func (d *Dispatcher) startWorkers() {
	for i := range d.maxWorkers {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

// startWorker processes events from the queue until it's closed.
func (d *Dispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Debug("starting review worker", "id", workerID)

	for event := range d.jobQueue {
		d.processEvent(workerID, event)
	}

	d.logger.Debug("shutting down review worker", "id", workerID)
}

func (d *Dispatcher) processEvent(workerID int, event *core.GitHubEvent) {
	d.logger.Info("worker processing job",
		"worker_id", workerID,
		"repo", event.RepoFullName,
		"pr", event.PRNumber,
	)

	if err := d.job.Run(context.Background(), event); err != nil {
		d.logger.Error("code review job failed",
			"repo", event.RepoFullName,
			"pr", event.PRNumber,
			"error", err,
		)
	}
}

// Dispatch queues an event for a worker. It never blocks: a full queue or a
// stopped dispatcher returns core.ErrQueueFull.
func (d *Dispatcher) Dispatch(_ context.Context, event *core.GitHubEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return core.ErrQueueFull
	}

	select {
	case d.jobQueue <- event:
		d.logger.Info("queued code review job", "repo", event.RepoFullName, "pr", event.PRNumber, "trigger", event.Trigger)
		return nil
	default:
		d.logger.Warn("job queue is full, dropping review", "repo", event.RepoFullName, "pr", event.PRNumber)
		return core.ErrQueueFull
	}
}

// Stop closes the queue and waits for running and queued jobs to finish.
// Calling it more than once is safe.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobQueue)
	d.mu.Unlock()

	d.logger.Info("stopping dispatcher and waiting for jobs to finish")
	d.wg.Wait()
	d.logger.Info("all review jobs have finished")
}
