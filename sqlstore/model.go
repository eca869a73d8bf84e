package sqlstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl/job"
)

type jobModel struct {
	bun.BaseModel `bun:"table:jobs,alias:j"`

	ID string `bun:"id,pk"`

	Command string `bun:"command,notnull"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull"`

	Status      job.Status `bun:"status,notnull,default:0"`
	Attempts    uint32     `bun:"attempts,notnull,default:0"`
	MaxRetries  uint32     `bun:"max_retries,notnull,default:0"`
	AvailableAt float64    `bun:"available_at,notnull,default:0"`
	Timeout     uint32     `bun:"timeout,notnull,default:0"`

	LastError *string  `bun:"last_error,nullzero"`
	Stdout    *string  `bun:"stdout,nullzero"`
	Stderr    *string  `bun:"stderr,nullzero"`
	Duration  *float64 `bun:"duration,nullzero"`
	TimedOut  bool     `bun:"timed_out,notnull,default:false"`
}

func (jm *jobModel) toJob() *job.Job {
	return &job.Job{
		ID:          jm.ID,
		Command:     jm.Command,
		CreatedAt:   jm.CreatedAt,
		UpdatedAt:   jm.UpdatedAt,
		Status:      jm.Status,
		Attempts:    jm.Attempts,
		MaxRetries:  jm.MaxRetries,
		AvailableAt: jm.AvailableAt,
		Timeout:     jm.Timeout,
		LastError:   jm.LastError,
		Stdout:      jm.Stdout,
		Stderr:      jm.Stderr,
		Duration:    jm.Duration,
		TimedOut:    jm.TimedOut,
	}
}
