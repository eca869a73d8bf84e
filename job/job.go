package job

import "time"

// Job represents a shell command managed by the queue storage.
//
// CreatedAt records when the job was initially enqueued and never
// changes. UpdatedAt records the last state transition or modification.
//
// Status represents the current state in the job lifecycle.
// Attempts counts how many execution attempts have been started,
// successful or not; it is incremented when the job is claimed, so a
// Processing job's count includes the attempt in flight. MaxRetries is
// the ceiling: once Attempts reaches MaxRetries
// after a failed attempt, the job transitions to Dead instead of being
// retried.
//
// AvailableAt is the earliest wall-clock time (epoch seconds) at which a
// Pending job may be claimed; zero means immediately. It is only
// consulted while Status is Pending.
//
// Timeout overrides the store's configured default execution timeout
// for this job, in seconds; zero means "use the default".
//
// LastError, Stdout and Stderr capture diagnostics from the most recent
// execution attempt. Duration is its wall time in seconds. TimedOut
// reports whether that attempt was killed for exceeding its timeout.
//
// Job instances should be treated as snapshots of storage state.
// Mutating fields directly does not change the underlying queue state;
// transitions must be performed through the Store interface.
type Job struct {
	ID      string `json:"id"`
	Command string `json:"command"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Status      Status  `json:"state"`
	Attempts    uint32  `json:"attempts"`
	MaxRetries  uint32  `json:"max_retries"`
	AvailableAt float64 `json:"available_at"`
	Timeout     uint32  `json:"timeout"`

	LastError *string  `json:"last_error,omitempty"`
	Stdout    *string  `json:"stdout,omitempty"`
	Stderr    *string  `json:"stderr,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	TimedOut  bool     `json:"timed_out"`
}
