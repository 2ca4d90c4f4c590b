package booking

import (
	"testing"
	"time"

	"studyspace/models"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	if got := EffectiveStatus(models.StatusBooked, yesterday, now); got != models.StatusCompleted {
		t.Fatalf("past BOOKED should project to COMPLETED, got %s", got)
	}
	if got := EffectiveStatus(models.StatusBooked, tomorrow, now); got != models.StatusBooked {
		t.Fatalf("future BOOKED should stay BOOKED, got %s", got)
	}
	if got := EffectiveStatus(models.StatusCancelled, yesterday, now); got != models.StatusCancelled {
		t.Fatalf("CANCELLED is never overridden, got %s", got)
	}
	if got := EffectiveStatus(models.StatusCompleted, tomorrow, now); got != models.StatusCompleted {
		t.Fatalf("COMPLETED passes through, got %s", got)
	}
}

func TestEffectiveStatus_EndExactlyNow(t *testing.T) {
	// The projection flips strictly after the end instant, not at it.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := EffectiveStatus(models.StatusBooked, now, now); got != models.StatusBooked {
		t.Fatalf("end == now should stay BOOKED, got %s", got)
	}
}

func TestProjectBookings(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{ID: 1, Status: models.StatusBooked, EndTime: "2026-03-09T10:00:00"},
		{ID: 2, Status: models.StatusBooked, EndTime: "2026-03-11T10:00:00"},
		{ID: 3, Status: models.StatusCancelled, EndTime: "2026-03-09T10:00:00"},
		{ID: 4, Status: models.StatusBooked, EndTime: "not-a-timestamp"},
	}

	projected := ProjectBookings(bookings, now)
	if projected[0].Status != models.StatusCompleted {
		t.Fatalf("booking 1: got %s", projected[0].Status)
	}
	if projected[1].Status != models.StatusBooked {
		t.Fatalf("booking 2: got %s", projected[1].Status)
	}
	if projected[2].Status != models.StatusCancelled {
		t.Fatalf("booking 3: got %s", projected[2].Status)
	}
	if projected[3].Status != models.StatusBooked {
		t.Fatalf("booking 4 with bad end time should keep stored status, got %s", projected[3].Status)
	}

	// Projection never mutates the input.
	if bookings[0].Status != models.StatusBooked {
		t.Fatal("input slice must not be mutated")
	}
}
