package booking

import (
	"time"

	"studyspace/models"
)

// MaxAllowedDuration computes the longest contiguous bookable duration in
// hours from start: the floor of minutes-to-closing over 60, further capped
// by the next unavailable slot strictly after start (unbounded when none
// exists). Returns 0 when start is at or past closing.
func MaxAllowedDuration(start time.Time, closing string, unavailable []time.Time) int {
	closeMinutes, ok := parseClock(closing)
	if !ok {
		return 0
	}
	startMinutes := start.Hour()*60 + start.Minute()
	if startMinutes >= closeMinutes {
		return 0
	}
	max := (closeMinutes - startMinutes) / 60

	// unavailable is sorted ascending; the first entry after start caps the
	// run of free hours.
	for _, u := range unavailable {
		if u.After(start) {
			gap := int(u.Sub(start).Minutes()) / 60
			if gap < max {
				max = gap
			}
			break
		}
	}
	return max
}

// fitsIntervals reports whether [start, start+hours) is clear of every
// booking interval. The next-unavailable cap is derived from one-hour slot
// probes and is not proven exhaustive for every gap pattern, so the duration
// set is re-derived from the raw interval set as well.
func fitsIntervals(start time.Time, hours int, intervals []models.Interval) bool {
	end := start.Add(time.Duration(hours) * time.Hour)
	for _, iv := range intervals {
		if overlaps(start, end, iv) {
			return false
		}
	}
	return true
}

// ValidDurations filters the fixed 1..8 hour menu down to the durations that
// fit before closing, before the next unavailable slot, and clear of the
// interval set.
func ValidDurations(start time.Time, closing string, unavailable []time.Time, intervals []models.Interval) []int {
	max := MaxAllowedDuration(start, closing, unavailable)
	if max > MaxBookingHours {
		max = MaxBookingHours
	}
	var valid []int
	for d := 1; d <= max; d++ {
		if fitsIntervals(start, d, intervals) {
			valid = append(valid, d)
		}
	}
	return valid
}

// NormalizeDuration keeps the current selection when it is still valid,
// otherwise silently resets it to the first valid option (1 when none
// remain). Recomputed whenever the start time, date, or availability change.
func NormalizeDuration(selected int, valid []int) int {
	for _, d := range valid {
		if d == selected {
			return selected
		}
	}
	if len(valid) > 0 {
		return valid[0]
	}
	return 1
}
