package queuectl

import (
	"context"
	"encoding/json"
	"time"

	"github.com/queuectl/queuectl/job"
)

// JobSpec describes a job to be enqueued.
//
// Command is required; Enqueue returns ErrInvalidSpec if it is empty.
// ID, MaxRetries, Timeout and CreatedAt are optional: a missing ID is
// generated, a missing MaxRetries falls back to the store's configured
// default, a missing or zero Timeout means "use the store's configured
// default" at execution time, and a missing CreatedAt defaults to now
// (UTC).
type JobSpec struct {
	Command    string
	ID         string
	MaxRetries uint32
	Timeout    uint32
	CreatedAt  time.Time
}

// Outcome describes the result of one execution attempt, passed to
// Finish.
//
// Attempts is the post-increment attempt count (the count including the
// attempt just completed). MaxRetries is the ceiling in effect for this
// job. NextDelay is only consulted when Success is false and Attempts is
// still below MaxRetries; it becomes the job's new AvailableAt offset.
type Outcome struct {
	Success    bool
	Attempts   uint32
	MaxRetries uint32
	Error      *string
	Stdout     *string
	Stderr     *string
	Duration   float64
	TimedOut   bool
	NextDelay  time.Duration
}

// Enqueuer creates new jobs.
type Enqueuer interface {
	// Enqueue persists a new job in the Pending state and returns its
	// assigned id. It returns ErrInvalidSpec if spec.Command is empty.
	Enqueue(ctx context.Context, spec JobSpec) (string, error)
}

// Claimer atomically selects the next ready job.
//
// A job is ready when its Status is Pending and its AvailableAt is at or
// before now. Among ready jobs, the one with the smallest CreatedAt is
// selected (FIFO).
type Claimer interface {
	// Claim transitions the next ready job to Processing and returns its
	// full record, with Attempts already incremented. If no job is
	// ready, Claim returns (nil, nil).
	//
	// Implementations must guarantee that at most one concurrent caller
	// observes any given job as claimed.
	Claim(ctx context.Context) (*job.Job, error)
}

// Finisher records the outcome of an execution attempt and applies the
// corresponding state transition.
type Finisher interface {
	// Finish transitions the job identified by id according to outcome:
	// Completed on success, Dead when failed with Attempts >= MaxRetries,
	// or back to Pending (with AvailableAt advanced by NextDelay) when
	// failed with retries remaining. Stdout, Stderr, Duration and
	// TimedOut are always persisted.
	Finish(ctx context.Context, id string, outcome Outcome) error
}

// Observer provides read-only access to jobs stored in the queue.
type Observer interface {
	// GetStatusCounts returns the number of jobs in each state.
	GetStatusCounts(ctx context.Context) (map[job.Status]int64, error)

	// ListJobs returns all jobs in the given status, ordered by
	// CreatedAt ascending. If status is job.Unknown, jobs in every
	// state are returned.
	ListJobs(ctx context.Context, status job.Status) ([]*job.Job, error)
}

// Retrier moves a Dead job back into circulation.
type Retrier interface {
	// DLQRetry resets the job identified by id to Pending with
	// Attempts=0 and AvailableAt=0, clearing LastError. It returns
	// ErrNotDead if the job does not exist or is not currently Dead.
	DLQRetry(ctx context.Context, id string) error
}

// ConfigStore is a durable key/value store for runtime configuration.
//
// Values are JSON-encoded scalars or objects. Three keys are interpreted:
// max_retries by Enqueue, backoff_base and job_timeout by Worker; any
// other key is an opaque scratchpad entry.
type ConfigStore interface {
	// GetConfig returns the raw JSON value stored under key. The second
	// return value is false if the key has never been set.
	GetConfig(ctx context.Context, key string) (json.RawMessage, bool, error)

	// SetConfig stores value (which must be valid JSON) under key,
	// overwriting any previous value.
	SetConfig(ctx context.Context, key string, value json.RawMessage) error
}

// Store is the full durable persistence contract consumed by Worker,
// Supervisor and the CLI front-end.
//
// Implementations must serialize writes through the underlying engine's
// transaction mechanism and make Claim strictly serializable across
// concurrent callers. Readers may observe a consistent-but-stale
// snapshot; that is acceptable for GetStatusCounts and ListJobs.
type Store interface {
	Enqueuer
	Claimer
	Finisher
	Observer
	Retrier
	ConfigStore
}

// Recognized configuration keys and their documented defaults.
const (
	ConfigMaxRetries  = "max_retries"
	ConfigBackoffBase = "backoff_base"
	ConfigJobTimeout  = "job_timeout"

	DefaultMaxRetries  uint32        = 3
	DefaultBackoffBase float64       = 2
	DefaultJobTimeout  time.Duration = 10 * time.Second
)
