// Package cli wires queuectl's subcommands (enqueue, worker, status,
// list, dlq, config) onto a cobra command tree.
//
// Every subcommand resolves its database file relative to the current
// working directory at call time, not at process startup, matching the
// Python original's "bind nothing at import time" behavior so that
// tests which change directories still see the right file.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/sqlstore"
)

const (
	defaultDBFile  = "queuectl.db"
	defaultPidFile = "queuectl_workers.pid"
)

var (
	dbPath   string
	pidPath  string
	logLevel string
	log      *slog.Logger
)

// RootCmd is the top-level queuectl command.
var RootCmd = &cobra.Command{
	Use:           "queuectl",
	Short:         "A durable, persistent job queue that executes shell commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)

	RootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBFile, "path to the queue's SQLite database file")
	RootCmd.PersistentFlags().StringVar(&pidPath, "pid-file", defaultPidFile, "path to the worker pool's pid file")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	RootCmd.AddCommand(enqueueCmd)
	RootCmd.AddCommand(workerCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(dlqCmd)
	RootCmd.AddCommand(configCmd)
}

func initLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore resolves dbPath against the current working directory and
// opens (creating and migrating, if necessary) the store there.
func openStore(ctx context.Context) (*sqlstore.Store, error) {
	return sqlstore.Open(ctx, dbPath)
}

// Execute runs the command tree, returning the process exit code.
func Execute(ctx context.Context) int {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
