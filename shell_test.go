package queuectl

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunShellSuccess(t *testing.T) {
	res := runShell(context.Background(), "echo test-basic", time.Second)
	if res.err != "" {
		t.Fatalf("expected success, got err=%q", res.err)
	}
	if !strings.Contains(res.stdout, "test-basic") {
		t.Fatalf("expected stdout to contain test-basic, got %q", res.stdout)
	}
}

func TestRunShellNonZeroExit(t *testing.T) {
	res := runShell(context.Background(), "/bin/false", time.Second)
	if res.err == "" {
		t.Fatal("expected a non-empty error for a failing command")
	}
	if res.timedOut {
		t.Fatal("non-zero exit is not a timeout")
	}
}

func TestRunShellTimeout(t *testing.T) {
	res := runShell(context.Background(), "sleep 10", 100*time.Millisecond)
	if !res.timedOut {
		t.Fatal("expected timedOut=true")
	}
	if res.err == "" {
		t.Fatal("expected a non-empty error on timeout")
	}
}

func TestRunShellUnknownCommand(t *testing.T) {
	res := runShell(context.Background(), "nonexistent-command-xyz", time.Second)
	if res.err == "" {
		t.Fatal("expected an error for an unknown command")
	}
}
