package queuectl

import (
	"testing"
	"time"

	"github.com/queuectl/queuectl/internal"
)

func TestLcBaseDoubleStart(t *testing.T) {
	var lb lcBase
	if err := lb.tryStart(); err != nil {
		t.Fatal(err)
	}
	if err := lb.tryStart(); err != ErrDoubleStarted {
		t.Fatalf("expected ErrDoubleStarted, got %v", err)
	}
}

func TestLcBaseDoubleStop(t *testing.T) {
	var lb lcBase
	done := make(internal.DoneChan)
	close(done)
	if err := lb.tryStop(time.Second, func() internal.DoneChan { return done }); err != ErrDoubleStopped {
		t.Fatalf("expected ErrDoubleStopped when not started, got %v", err)
	}
}

func TestLcBaseStopTimeout(t *testing.T) {
	var lb lcBase
	if err := lb.tryStart(); err != nil {
		t.Fatal(err)
	}
	never := make(internal.DoneChan)
	if err := lb.tryStop(10*time.Millisecond, func() internal.DoneChan { return never }); err != ErrStopTimeout {
		t.Fatalf("expected ErrStopTimeout, got %v", err)
	}
}

func TestLcBaseCleanStop(t *testing.T) {
	var lb lcBase
	if err := lb.tryStart(); err != nil {
		t.Fatal(err)
	}
	done := make(internal.DoneChan)
	close(done)
	if err := lb.tryStop(time.Second, func() internal.DoneChan { return done }); err != nil {
		t.Fatal(err)
	}
}
