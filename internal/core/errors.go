package core

import "errors"

var (
	// ErrConfiguration marks missing or invalid settings. It is fatal at startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrTransport marks a network or HTTP failure talking to the hosting API
	// or a model API. Reviews that hit it are aborted without retry.
	ErrTransport = errors.New("transport error")

	// ErrNoSuitableModel is returned by model discovery when the backend lists
	// no model that can generate content.
	ErrNoSuitableModel = errors.New("no suitable model")
)

// ErrQueueFull is returned by a JobDispatcher that cannot accept more work.
var ErrQueueFull = errors.New("job queue is full")
