// Package sqlstore provides a bun-based SQL storage implementation of
// queuectl.Store.
//
// This package implements queuectl's Enqueuer, Claimer, Finisher,
// Observer, Retrier and ConfigStore interfaces on top of a relational
// database via github.com/uptrace/bun.
//
// # Overview
//
// The SQL backend provides:
//
//   - durable persistence of jobs and runtime configuration
//   - atomic claim using UPDATE ... RETURNING
//   - the full Pending/Processing/Completed/Dead state machine
//
// It targets SQLite through modernc.org/sqlite, the only dialect
// queuectl exercises, subject to SQLite's own transactional guarantees.
//
// # Concurrency Model
//
// Claim is implemented using a single atomic UPDATE statement with a
// subquery to avoid a race between selecting the next eligible job and
// marking it Processing. Because modernc.org/sqlite serializes access
// to a single file, Open additionally caps the connection pool at one
// open connection (db.SetMaxOpenConns(1)); without that cap, concurrent
// transactions against SQLite surface as "database is locked" errors
// rather than blocking.
//
// SQLite users are strongly encouraged to enable WAL mode and configure
// an appropriate busy_timeout, both of which Open sets via DSN query
// parameters.
//
// # Schema
//
// The backend expects a "jobs" table corresponding to jobModel and a
// "config" table corresponding to configModel. Schema is versioned
// through embedded goose migrations (see migrations/0001_init.sql) and
// applied by Open before the Store is returned.
//
// # Database Lifecycle
//
// Open owns the full lifecycle: opening the driver, configuring the pool,
// running migrations and seeding default configuration values. Callers
// are only responsible for supplying a DSN (or ":memory:" for an
// ephemeral store).
package sqlstore
