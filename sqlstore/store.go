package sqlstore

import (
	"context"
	gosql "database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

//go:embed migrations/*.sql
var migrations embed.FS

// defaultConfig is a process-wide constant table, seeded into the
// config table once on first open and never mutated in memory
// afterward.
var defaultConfig = map[string]any{
	queuectl.ConfigMaxRetries:  3,
	queuectl.ConfigBackoffBase: 2,
	queuectl.ConfigJobTimeout:  10,
}

// Store implements queuectl.Store on top of a single *bun.DB.
//
// All six interfaces share the same underlying connection pool and
// *bun.DB field pointing at one database.
type Store struct {
	db *bun.DB
}

var _ queuectl.Store = (*Store)(nil)

// Open connects to the SQLite database at dsn (use ":memory:" for an
// ephemeral store), applies WAL mode and a busy timeout, runs embedded
// migrations, and seeds default configuration values.
//
// Open caps the pool at one open connection: modernc.org/sqlite
// serializes file access per-connection, and Claim's atomicity depends
// on there being no second connection to race against.
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqlDSN := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dsn)
	if dsn == ":memory:" {
		sqlDSN = "file::memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := gosql.Open("sqlite", sqlDSN)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: opening database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := goose.SetDialect("sqlite3"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: setting goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations)
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: applying migrations: %w", err)
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	s := &Store{db: db}
	if err := s.seedDefaults(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: seeding config defaults: %w", err)
	}
	return s, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seedDefaults(ctx context.Context) error {
	for key, value := range defaultConfig {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		model := &configModel{Key: key, Value: raw}
		_, err = s.db.NewInsert().
			Model(model).
			On("CONFLICT (key) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// Enqueue implements queuectl.Enqueuer.
func (s *Store) Enqueue(ctx context.Context, spec queuectl.JobSpec) (string, error) {
	if spec.Command == "" {
		return "", queuectl.ErrInvalidSpec
	}
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	maxRetries := spec.MaxRetries
	if maxRetries == 0 {
		maxRetries = uint32(s.configInt(ctx, queuectl.ConfigMaxRetries, int(queuectl.DefaultMaxRetries)))
	}
	createdAt := spec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	model := &jobModel{
		ID:          id,
		Command:     spec.Command,
		Status:      job.Pending,
		Attempts:    0,
		MaxRetries:  maxRetries,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		AvailableAt: 0,
		Timeout:     spec.Timeout,
	}
	_, err := s.db.NewInsert().Model(model).Exec(ctx)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Claim implements queuectl.Claimer using a single UPDATE ... WHERE id
// IN (subquery) ... RETURNING statement: the subquery selects the one
// eligible row to claim, and the UPDATE both marks it Processing and
// returns its full record in one round trip, so no second caller can
// observe it as still Pending.
func (s *Store) Claim(ctx context.Context) (*job.Job, error) {
	now := time.Now()
	nowEpoch := float64(now.UnixNano()) / 1e9

	subQuery := s.db.NewSelect().
		Model((*jobModel)(nil)).
		Column("id").
		Where("status = ?", job.Pending).
		Where("available_at <= ?", nowEpoch).
		Order("created_at ASC").
		Limit(1)

	var rows []*jobModel
	err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("status = ?", job.Processing).
		Set("attempts = attempts + 1").
		Set("updated_at = ?", now.UTC()).
		Where("id IN (?)", subQuery).
		Returning("*").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toJob(), nil
}

// Finish implements queuectl.Finisher.
func (s *Store) Finish(ctx context.Context, id string, outcome queuectl.Outcome) error {
	now := time.Now()
	q := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("attempts = ?", outcome.Attempts).
		Set("updated_at = ?", now.UTC()).
		Set("stdout = ?", outcome.Stdout).
		Set("stderr = ?", outcome.Stderr).
		Set("duration = ?", outcome.Duration).
		Set("timed_out = ?", outcome.TimedOut).
		Where("id = ?", id)

	switch {
	case outcome.Success:
		q = q.Set("status = ?", job.Completed).Set("last_error = NULL")
	case outcome.Attempts >= outcome.MaxRetries:
		q = q.Set("status = ?", job.Dead).Set("last_error = ?", outcome.Error)
	default:
		nextAvail := float64(now.UnixNano())/1e9 + outcome.NextDelay.Seconds()
		q = q.Set("status = ?", job.Pending).
			Set("available_at = ?", nextAvail).
			Set("last_error = ?", outcome.Error)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return fmt.Errorf("sqlstore: finish: job %s not found", id)
	}
	return nil
}

// GetStatusCounts implements queuectl.Observer.
func (s *Store) GetStatusCounts(ctx context.Context) (map[job.Status]int64, error) {
	var rows []struct {
		Status job.Status `bun:"status"`
		Count  int64      `bun:"cnt"`
	}
	err := s.db.NewSelect().
		Model((*jobModel)(nil)).
		Column("status").
		ColumnExpr("COUNT(*) AS cnt").
		Group("status").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	counts := make(map[job.Status]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// ListJobs implements queuectl.Observer.
func (s *Store) ListJobs(ctx context.Context, status job.Status) ([]*job.Job, error) {
	var models []*jobModel
	q := s.db.NewSelect().Model(&models).Order("created_at ASC")
	if status != job.Unknown {
		q = q.Where("status = ?", status)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	jobs := make([]*job.Job, len(models))
	for i, m := range models {
		jobs[i] = m.toJob()
	}
	return jobs, nil
}

// DLQRetry implements queuectl.Retrier.
func (s *Store) DLQRetry(ctx context.Context, id string) error {
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("status = ?", job.Pending).
		Set("attempts = 0").
		Set("available_at = 0").
		Set("last_error = NULL").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("status = ?", job.Dead).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return queuectl.ErrNotDead
	}
	return nil
}

// GetConfig implements queuectl.ConfigStore.
func (s *Store) GetConfig(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var model configModel
	err := s.db.NewSelect().Model(&model).Where("key = ?", key).Scan(ctx)
	if err != nil {
		if errors.Is(err, gosql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return model.Value, true, nil
}

// SetConfig implements queuectl.ConfigStore.
func (s *Store) SetConfig(ctx context.Context, key string, value json.RawMessage) error {
	model := &configModel{Key: key, Value: value}
	_, err := s.db.NewInsert().
		Model(model).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

func (s *Store) configInt(ctx context.Context, key string, fallback int) int {
	raw, ok, err := s.GetConfig(ctx, key)
	if err != nil || !ok {
		return fallback
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}
