package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
)

// jobEnvelope is the JSON object accepted by "queuectl enqueue".
type jobEnvelope struct {
	Command    string `json:"command"`
	ID         string `json:"id"`
	MaxRetries uint32 `json:"max_retries"`
	Timeout    uint32 `json:"timeout"`
	CreatedAt  string `json:"created_at"`
}

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <job_json>",
	Short: "Enqueue a new job from a JSON envelope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var env jobEnvelope
		if err := json.Unmarshal([]byte(args[0]), &env); err != nil {
			fmt.Println("Invalid JSON for job")
			return errors.New("invalid JSON for job")
		}

		spec := queuectl.JobSpec{
			Command:    env.Command,
			ID:         env.ID,
			MaxRetries: env.MaxRetries,
			Timeout:    env.Timeout,
		}
		if env.CreatedAt != "" {
			ts, err := time.Parse(time.RFC3339, env.CreatedAt)
			if err != nil {
				fmt.Println("Invalid JSON for job")
				return fmt.Errorf("invalid created_at: %w", err)
			}
			spec.CreatedAt = ts
		}

		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Enqueue(ctx, spec)
		if err != nil {
			return err
		}
		fmt.Printf("enqueued %s\n", id)
		return nil
	},
}
