package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/job"
)

var listStateFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, optionally filtered by state",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := job.Unknown
		if listStateFlag != "" {
			parsed, err := job.ParseStatus(listStateFlag)
			if err != nil {
				return err
			}
			status = parsed
		}

		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		jobs, err := store.ListJobs(ctx, status)
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

func init() {
	listCmd.Flags().StringVar(&listStateFlag, "state", "", "filter by job state (pending, processing, completed, dead)")
}
