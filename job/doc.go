// Package job defines the stateful representation of a queued command
// within the queuectl lifecycle.
//
// A Job carries the shell command to execute along with delivery and
// scheduling metadata: Status, Attempts, retry ceiling, availability
// timestamp, per-job timeout override, and the outcome of its most
// recent execution attempt.
//
// Job values are returned by Store.Claim and Store.ListJobs. State
// transitions go through Store.Finish and Store.DLQRetry, which take the
// job's ID.
//
// Job is not intended to be constructed manually by user code. Its
// fields reflect the authoritative state stored by the queue backend.
package job
