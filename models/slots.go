package models

import "time"

// TimeSlot is a candidate one-hour booking start time within a space's
// operating hours. Value is the 24-hour "HH:MM" form, Label the 12-hour
// display form. Slots are ephemeral and regenerated per date/space.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Availability annotates a slot grid for one space and date.
type Availability struct {
	// BySlot maps a slot value ("HH:MM") to whether it can anchor a booking.
	BySlot map[string]bool
	// UnavailableTimes holds the start instants of unavailable slots,
	// sorted ascending. Used to cap the bookable duration.
	UnavailableTimes []time.Time
}

// Interval is a half-open booking interval [Start, End) derived from a
// persisted booking, used for overlap checks.
type Interval struct {
	Start time.Time
	End   time.Time
}

// AnnotatedSlot is the wire form handed to the booking dialog: a slot plus
// its availability and the durations it could anchor.
type AnnotatedSlot struct {
	TimeSlot
	Available      bool  `json:"available"`
	ValidDurations []int `json:"validDurations,omitempty"`
}
