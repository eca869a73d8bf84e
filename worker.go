package queuectl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/queuectl/queuectl/internal"
	"github.com/queuectl/queuectl/job"
)

// defaultPollInterval is how often an idle Worker checks the store for a
// claimable job.
const defaultPollInterval = 500 * time.Millisecond

// WorkerConfig defines runtime behavior of a Worker.
//
// ID identifies the worker for logging purposes; it has no effect on
// store operations. PollInterval defaults to 500ms when zero.
type WorkerConfig struct {
	ID           int
	PollInterval time.Duration
}

// Worker coordinates claiming, executing and finishing jobs for a single
// OS process.
//
// Worker processes at most one job at a time. It:
//
//  1. Claims the next ready job from the store.
//  2. Resolves the effective timeout (job override or config default).
//  3. Spawns the job's command through a shell, enforcing that timeout.
//  4. Classifies the outcome and computes a backoff delay on failure.
//  5. Records the outcome via Store.Finish.
//
// Worker has a strict lifecycle: Start may only be called once, and Stop
// waits for any in-flight job to finish before the loop exits, subject to
// a timeout.
type Worker struct {
	lcBase
	id           int
	store        Store
	log          *slog.Logger
	pollInterval time.Duration
	backoffBase  float64
	jobTimeout   time.Duration
	cancel       context.CancelFunc
	done         internal.DoneChan
}

// NewWorker creates a new Worker instance bound to store.
//
// The worker is not started automatically. Call Start to begin claiming
// and executing jobs.
func NewWorker(store Store, config *WorkerConfig, log *slog.Logger) *Worker {
	interval := config.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Worker{
		id:           config.ID,
		store:        store,
		log:          log,
		pollInterval: interval,
		backoffBase:  DefaultBackoffBase,
		jobTimeout:   DefaultJobTimeout,
	}
}

func configFloat(ctx context.Context, store ConfigStore, key string, fallback float64) float64 {
	raw, ok, err := store.GetConfig(ctx, key)
	if err != nil || !ok {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// loadConfig resolves backoff_base and job_timeout once at startup, per
// the design notes: config is read at process start, not re-read on
// every iteration.
func (w *Worker) loadConfig(ctx context.Context) {
	w.backoffBase = configFloat(ctx, w.store, ConfigBackoffBase, DefaultBackoffBase)
	timeoutSeconds := configFloat(ctx, w.store, ConfigJobTimeout, float64(DefaultJobTimeout/time.Second))
	w.jobTimeout = time.Duration(timeoutSeconds * float64(time.Second))
}

// Start begins the claim/execute/finish loop in a background goroutine.
//
// Start returns ErrDoubleStarted if the worker has already been started.
// The provided context controls cancellation of the claim loop; it does
// not interrupt an in-flight subprocess, which is allowed to finish
// before the loop exits.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.tryStart(); err != nil {
		return err
	}
	w.loadConfig(ctx)
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(internal.DoneChan)
	go w.run(loopCtx)
	return nil
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		jb, err := w.store.Claim(ctx)
		if err != nil {
			// StoreBusy and similar transient contention collapse to
			// "no job available"; it must not propagate as fatal.
			w.log.Error("claim failed, treating as no job available", "worker", w.id, "err", err)
			jb = nil
		}
		if jb == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.pollInterval):
			}
			continue
		}
		w.execute(jb)
	}
}

func (w *Worker) effectiveTimeout(jb *job.Job) time.Duration {
	if jb.Timeout > 0 {
		return time.Duration(jb.Timeout) * time.Second
	}
	return w.jobTimeout
}

func (w *Worker) execute(jb *job.Job) {
	timeout := w.effectiveTimeout(jb)
	w.log.Info("claimed job", "worker", w.id, "id", jb.ID, "attempt", jb.Attempts, "timeout", timeout)

	start := time.Now()
	res := runShell(context.Background(), jb.Command, timeout)
	duration := time.Since(start).Seconds()

	outcome := Outcome{
		Attempts:   jb.Attempts,
		MaxRetries: jb.MaxRetries,
		Stdout:     &res.stdout,
		Stderr:     &res.stderr,
		Duration:   duration,
		TimedOut:   res.timedOut,
	}

	if res.err == "" {
		outcome.Success = true
		w.log.Info("job completed", "worker", w.id, "id", jb.ID, "duration", duration)
	} else {
		outcome.Success = false
		errMsg := res.err
		outcome.Error = &errMsg
		if jb.Attempts < jb.MaxRetries {
			outcome.NextDelay = backoffDelay(w.backoffBase, jb.Attempts)
			w.log.Warn("job failed, scheduling retry", "worker", w.id, "id", jb.ID,
				"attempt", jb.Attempts, "delay", outcome.NextDelay, "err", res.err)
		} else {
			w.log.Warn("job exhausted retries, moving to dead letter", "worker", w.id, "id", jb.ID,
				"attempt", jb.Attempts, "err", res.err)
		}
	}

	if err := w.store.Finish(context.Background(), jb.ID, outcome); err != nil {
		w.log.Error(fmt.Sprintf("finish failed for job %s; it remains processing", jb.ID),
			"worker", w.id, "err", err)
	}
}

func (w *Worker) doStop() internal.DoneChan {
	w.cancel()
	return w.done
}

// Stop initiates graceful shutdown: it stops claiming new jobs and waits
// for any in-flight job to finish before returning.
//
// If shutdown does not complete within timeout, ErrStopTimeout is
// returned; the in-flight job may still be running in the background.
// Stop returns ErrDoubleStopped if the worker is not running.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.tryStop(timeout, w.doStop)
}
