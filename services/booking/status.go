package booking

import (
	"time"

	"studyspace/models"
)

// EffectiveStatus projects a booking's display status: a BOOKED booking
// whose end instant has passed reads as COMPLETED. CANCELLED and COMPLETED
// pass through unchanged. Pure and time-dependent, so it must be re-applied
// on every listing pass; the persisted status is never mutated.
func EffectiveStatus(status string, end, now time.Time) string {
	if status == models.StatusBooked && end.Before(now) {
		return models.StatusCompleted
	}
	return status
}

// ProjectBooking returns a copy of b with its display status applied. A
// booking whose end time cannot be parsed keeps its stored status.
func ProjectBooking(b models.Booking, now time.Time) models.Booking {
	end, err := time.ParseInLocation(models.TimestampLayout, b.EndTime, now.Location())
	if err != nil {
		return b
	}
	b.Status = EffectiveStatus(b.Status, end, now)
	return b
}

// ProjectBookings applies the display-status projection across a listing.
func ProjectBookings(bookings []models.Booking, now time.Time) []models.Booking {
	projected := make([]models.Booking, len(bookings))
	for i, b := range bookings {
		projected[i] = ProjectBooking(b, now)
	}
	return projected
}
