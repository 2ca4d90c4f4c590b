package cron

import (
	"testing"
	"time"
)

func TestScheduleSpec(t *testing.T) {
	if got := scheduleSpec(2 * time.Minute); got != "@every 2m0s" {
		t.Fatalf("got %q", got)
	}
	// A zero or negative interval must not reach the scheduler.
	if got := scheduleSpec(0); got != "@every 1m0s" {
		t.Fatalf("zero interval should be floored, got %q", got)
	}
	if got := scheduleSpec(-time.Second); got != "@every 1m0s" {
		t.Fatalf("negative interval should be floored, got %q", got)
	}
	if got := scheduleSpec(30 * time.Second); got != "@every 1m0s" {
		t.Fatalf("sub-minute interval should be floored, got %q", got)
	}
}
