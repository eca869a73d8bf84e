// Command queuectl is a durable, persistent job queue that executes
// shell commands, retries failures with exponential backoff, and routes
// exhausted jobs to a dead-letter queue.
package main

import (
	"context"
	"os"

	"github.com/queuectl/queuectl/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
