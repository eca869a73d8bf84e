package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
)

// shutdownGracePeriod bounds how long "worker run" waits for an
// in-flight job to finish after receiving a shutdown signal before
// giving up and returning ErrStopTimeout.
const shutdownGracePeriod = 24 * time.Hour

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start, stop or run worker processes",
}

var workerStartCount int

var workerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Spawn a pool of worker processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workerStartCount < 1 {
			workerStartCount = 1
		}
		self, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolving own executable: %w", err)
		}
		sup := queuectl.NewSupervisor(queuectl.SupervisorConfig{
			PidFile: pidPath,
			Self:    self,
			RunArgs: []string{"--db", dbPath, "--pid-file", pidPath, "--log-level", logLevel, "worker", "run"},
		}, log)
		pids, err := sup.Start(workerStartCount)
		if err != nil {
			return err
		}
		fmt.Printf("Started %d worker(s). PIDs written to %s\n", len(pids), pidPath)
		fmt.Println("Workers started as background processes. To stop them: queuectl worker stop")
		return nil
	},
}

var workerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Signal all running worker processes to shut down",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(pidPath); os.IsNotExist(err) {
			fmt.Println("No PID file found; no workers appear to be running")
			return nil
		}
		self, _ := os.Executable()
		sup := queuectl.NewSupervisor(queuectl.SupervisorConfig{PidFile: pidPath, Self: self}, log)
		pids, err := sup.Stop()
		if err != nil {
			return err
		}
		fmt.Printf("Will attempt graceful shutdown of %d worker(s)\n", len(pids))
		fmt.Println("Stop signal sent to workers (they will exit after current job)")
		return nil
	},
}

var workerRunID int

// workerRunCmd is the hidden subcommand Supervisor re-execs into a
// separate OS process. It is not intended for direct interactive use.
var workerRunCmd = &cobra.Command{
	Use:    "run",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		w := queuectl.NewWorker(store, &queuectl.WorkerConfig{ID: workerRunID}, log)
		if err := w.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		return w.Stop(shutdownGracePeriod)
	},
}

func init() {
	workerStartCmd.Flags().IntVar(&workerStartCount, "count", 1, "number of worker processes to start")
	workerRunCmd.Flags().IntVar(&workerRunID, "id", 0, "worker identifier used for logging")

	workerCmd.AddCommand(workerStartCmd)
	workerCmd.AddCommand(workerStopCmd)
	workerCmd.AddCommand(workerRunCmd)
}
