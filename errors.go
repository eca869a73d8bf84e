package queuectl

import "errors"

var (
	// ErrDoubleStarted is returned when Start is called on a worker that
	// has already been started.
	ErrDoubleStarted = errors.New("queuectl: double start")

	// ErrDoubleStopped is returned when Stop is called on a worker that
	// is not currently running.
	ErrDoubleStopped = errors.New("queuectl: double stop")

	// ErrStopTimeout is returned when a worker fails to shut down within
	// the provided timeout during Stop. The worker may still be
	// terminating in the background.
	ErrStopTimeout = errors.New("queuectl: stop timeout")

	// ErrInvalidSpec is returned by Enqueue when the job spec is
	// malformed, most commonly a missing Command.
	ErrInvalidSpec = errors.New("queuectl: invalid job spec")

	// ErrNotDead is returned by DLQRetry when the referenced job does
	// not exist or is not currently Dead.
	ErrNotDead = errors.New("queuectl: job not found or not dead")
)
