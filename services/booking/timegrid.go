// Package booking implements the booking-dialog core: the hourly slot grid,
// availability resolution against existing bookings, duration capping, the
// submission flow, and display-status projection.
package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"studyspace/models"
)

// MaxBookingHours bounds the duration menu offered in the booking dialog.
const MaxBookingHours = 8

// parseClock converts an "HH:MM" wall-clock string to minutes since
// midnight. Returns false for missing or malformed input.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// formatClock renders minutes since midnight as "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// displayLabel renders minutes since midnight in 12-hour form, e.g. "2:30 PM".
func displayLabel(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, ampm)
}

// at anchors a minutes-since-midnight value on the given calendar date.
func at(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// SlotStart anchors a slot value ("HH:MM") on a calendar date. Returns false
// for malformed values.
func SlotStart(date time.Time, value string) (time.Time, bool) {
	minutes, ok := parseClock(value)
	if !ok {
		return time.Time{}, false
	}
	return at(date, minutes), true
}

// sameDay reports whether a and b fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// GenerateTimeSlots builds the candidate hourly start times for a space on a
// calendar date. Slots step 60 minutes from opening up to strictly before
// closing. When date is today's date, slots starting at or before now are
// excluded. Missing or inverted operating hours yield an empty grid.
func GenerateTimeSlots(opening, closing string, date, now time.Time) []models.TimeSlot {
	openMinutes, ok := parseClock(opening)
	if !ok {
		return nil
	}
	closeMinutes, ok := parseClock(closing)
	if !ok {
		return nil
	}

	today := sameDay(date, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	var slots []models.TimeSlot
	for m := openMinutes; m < closeMinutes; m += 60 {
		if today && m <= nowMinutes {
			continue
		}
		slots = append(slots, models.TimeSlot{
			Value: formatClock(m),
			Label: displayLabel(m),
		})
	}
	return slots
}
