package queuectl_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/queuectl/queuectl"
)

func TestSupervisorStartStopLivePids(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "workers.pid")
	sup := queuectl.NewSupervisor(queuectl.SupervisorConfig{
		PidFile: pidFile,
		Self:    "/bin/sh",
		RunArgs: []string{"-c", "sleep 5"},
	}, discardLogger())

	pids, err := sup.Start(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pids) != 2 {
		t.Fatalf("expected 2 pids, got %d", len(pids))
	}
	defer func() {
		for _, pid := range pids {
			_ = syscall.Kill(pid, syscall.SIGKILL)
		}
	}()

	live, exists, err := sup.LivePids()
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected pid file to exist after Start")
	}
	if len(live) != 2 {
		t.Fatalf("expected 2 live pids, got %d", len(live))
	}

	stopped, err := sup.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if len(stopped) != 2 {
		t.Fatalf("expected Stop to report 2 pids, got %d", len(stopped))
	}
	if _, err := os.Stat(pidFile); !os.IsNotExist(err) {
		t.Fatal("expected pid file to be removed after Stop")
	}

	// Give SIGTERM a moment to land before the deferred SIGKILL cleanup.
	time.Sleep(50 * time.Millisecond)
}

func TestSupervisorStopWithNoPidFile(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "missing.pid")
	sup := queuectl.NewSupervisor(queuectl.SupervisorConfig{PidFile: pidFile}, discardLogger())

	pids, err := sup.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if len(pids) != 0 {
		t.Fatalf("expected no pids for a missing pid file, got %v", pids)
	}

	_, exists, err := sup.LivePids()
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing pid file")
	}
}
