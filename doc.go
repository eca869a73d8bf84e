// Package queuectl provides a durable, persistent job queue with a worker
// pool that executes shell commands, retries failures with exponential
// backoff, and routes exhausted jobs to a dead-letter state.
//
// # Overview
//
// queuectl models a durable command queue with explicit state
// transitions. A Job carries a shell command plus delivery and scheduling
// metadata (job.Job), and the Store interface defines the atomic claim
// protocol and lifecycle operations that let many worker processes each
// pick a unique ready job without overlap.
//
// The package does not mandate any particular storage backend. The
// sqlstore subpackage implements Store on top of SQLite via bun, but any
// backend providing the same atomicity guarantee may be substituted.
//
// # Delivery Semantics
//
// Jobs survive process crashes and restarts via the durable store.
// Processing is not guaranteed exactly-once: a job left in Processing
// when its worker crashes is not automatically reclaimed (see the
// Supervisor and Worker docs). Shell commands executed by a Worker should
// therefore be written to tolerate re-execution where possible.
//
// # State Machine
//
// Jobs follow this lifecycle:
//
//	Pending    -> Processing
//	Processing -> Completed
//	Processing -> Pending   (retry, with backoff)
//	Processing -> Dead
//	Dead       -> Pending   (via DLQRetry)
//
// Completed is a hard terminal state. Dead is recoverable only through an
// explicit DLQRetry call.
//
// # Retry Policy
//
// Retry behavior is controlled by the backoff_base config key together
// with each job's MaxRetries. When a command exits non-zero or is killed
// by its timeout:
//
//   - If Attempts after the failed run is still below MaxRetries, the
//     job is rescheduled with delay floor(backoff_base^Attempts) seconds.
//   - Otherwise the job transitions to Dead.
//
// Attempts is incremented once per execution attempt, regardless of
// outcome, at the moment the job is claimed.
//
// # Worker
//
// Worker coordinates claiming, executing and finishing jobs for a single
// OS process. It:
//
//   - polls the store for a claimable job roughly every 500ms when idle
//   - spawns the job's command through a shell with a hard timeout
//   - classifies the outcome (success / failure / timeout / spawn error)
//   - applies retry/backoff or dead-letter logic via Store.Finish
//   - supports graceful shutdown that lets an in-flight job finish
//
// Worker processes at most one job at a time; concurrency across the
// pool comes from running multiple Worker processes, supervised by
// Supervisor.
//
// # Interfaces
//
// queuectl defines the following narrow interfaces, composed into Store:
//
//	Enqueuer    — create new jobs
//	Claimer     — atomically claim the next ready job
//	Finisher    — record the outcome of an execution attempt
//	Observer    — inspect job state and aggregate counts
//	Retrier     — move a Dead job back to Pending
//	ConfigStore — durable key/value runtime configuration
//
// These interfaces allow storage implementations to be plugged in
// without coupling queue and worker logic to a specific database.
//
// # Concurrency Model
//
// The store is a shared resource consumed by many worker processes plus
// the CLI. Claim is the only cross-worker synchronization point and must
// be strictly serializable: two concurrent Claim calls must never return
// the same job. Readers (ListJobs, GetStatusCounts) may observe a
// slightly stale snapshot; that is acceptable for diagnostic queries.
//
// # Summary
//
// queuectl provides a minimal, durable foundation for running shell
// commands as background jobs with explicit lifecycle control, retry
// semantics, and a pluggable storage backend.
package queuectl
