package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print job counts by state and the live worker pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		counts, err := store.GetStatusCounts(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Job counts by state:")
		for _, s := range []job.Status{job.Pending, job.Processing, job.Completed, job.Dead} {
			fmt.Printf("  %s: %d\n", s, counts[s])
		}

		printWorkerPids()
		return nil
	},
}

func printWorkerPids() {
	sup := queuectl.NewSupervisor(queuectl.SupervisorConfig{PidFile: pidPath}, log)
	pids, exists, err := sup.LivePids()
	if !exists {
		fmt.Println("Active worker pids: none")
		return
	}
	if err != nil {
		fmt.Println("Active worker pids: (error reading pid file)")
		return
	}
	fmt.Printf("Active worker pids: %v\n", pids)
}
