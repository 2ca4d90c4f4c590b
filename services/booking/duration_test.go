package booking

import (
	"testing"
	"time"

	"studyspace/models"
)

func TestMaxAllowedDuration_ClosingBoundary(t *testing.T) {
	// 18:00 with a 20:00 close: two full hours fit, the 20:00 boundary is
	// inclusive.
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	if got := MaxAllowedDuration(start, "20:00", nil); got != 2 {
		t.Fatalf("expected max 2, got %d", got)
	}
}

func TestMaxAllowedDuration_NextUnavailableCaps(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	unavailable := []time.Time{
		time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC),
	}
	// Closing is much later; the 16:00 conflict caps the run at 2 hours.
	if got := MaxAllowedDuration(start, "23:00", unavailable); got != 2 {
		t.Fatalf("expected max 2, got %d", got)
	}
}

func TestMaxAllowedDuration_IgnoresEarlierUnavailable(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	unavailable := []time.Time{
		time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), // before start, irrelevant
	}
	if got := MaxAllowedDuration(start, "20:00", unavailable); got != 6 {
		t.Fatalf("expected max 6, got %d", got)
	}
}

func TestMaxAllowedDuration_StartAtOrPastClosing(t *testing.T) {
	start := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	if got := MaxAllowedDuration(start, "20:00", nil); got != 0 {
		t.Fatalf("expected max 0, got %d", got)
	}
}

func TestValidDurations_Menu(t *testing.T) {
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	valid := ValidDurations(start, "20:00", nil, nil)
	if len(valid) != 2 || valid[0] != 1 || valid[1] != 2 {
		t.Fatalf("expected [1 2], got %v", valid)
	}
}

func TestValidDurations_CappedAtEight(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	valid := ValidDurations(start, "22:00", nil, nil)
	if len(valid) != 8 || valid[len(valid)-1] != 8 {
		t.Fatalf("expected menu capped at 8 hours, got %v", valid)
	}
}

func TestValidDurations_IntervalCrossCheck(t *testing.T) {
	// No unavailable slot times supplied, but the raw interval set still
	// blocks durations that would run into the 16:00 booking.
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	intervals := []models.Interval{{
		Start: time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC),
	}}

	valid := ValidDurations(start, "22:00", nil, intervals)
	if len(valid) != 2 || valid[0] != 1 || valid[1] != 2 {
		t.Fatalf("expected [1 2], got %v", valid)
	}
}

func TestNormalizeDuration(t *testing.T) {
	valid := []int{1, 2, 3}

	if got := NormalizeDuration(2, valid); got != 2 {
		t.Fatalf("valid selection should be kept, got %d", got)
	}
	if got := NormalizeDuration(5, valid); got != 1 {
		t.Fatalf("invalid selection should reset to first valid, got %d", got)
	}
	if got := NormalizeDuration(5, nil); got != 1 {
		t.Fatalf("empty valid set should reset to 1, got %d", got)
	}
}
