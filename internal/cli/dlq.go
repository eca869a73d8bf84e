package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/job"
)

var dlqCmd = &cobra.Command{
	Use:   "dlq",
	Short: "Inspect and retry dead-lettered jobs",
}

var dlqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dead-lettered jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		jobs, err := store.ListJobs(ctx, job.Dead)
		if err != nil {
			return err
		}
		for _, jb := range jobs {
			line, err := json.Marshal(jb)
			if err != nil {
				return err
			}
			fmt.Println(string(line))
		}
		return nil
	},
}

var dlqRetryCmd = &cobra.Command{
	Use:   "retry <job_id>",
	Short: "Move a dead-lettered job back to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DLQRetry(ctx, args[0]); err != nil {
			fmt.Println("error:", err)
			return err
		}
		fmt.Println("job moved back to pending")
		return nil
	},
}

func init() {
	dlqCmd.AddCommand(dlqListCmd)
	dlqCmd.AddCommand(dlqRetryCmd)
}
