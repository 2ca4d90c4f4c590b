package models

// Booking statuses as persisted by the StudySpace API.
const (
	StatusBooked    = "BOOKED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// TimestampLayout is the wall-clock format the StudySpace API exchanges
// booking times in. No timezone designator, no UTC conversion.
const TimestampLayout = "2006-01-02T15:04:05"

// DateLayout is the calendar-date path segment format.
const DateLayout = "2006-01-02"

// Booking is a booking record as returned by the StudySpace API. The
// denormalized space/user fields are populated by the detailed and per-user
// listings only.
type Booking struct {
	ID                 int     `json:"id"`
	UserID             int     `json:"userId,omitempty"`
	SpaceID            int     `json:"spaceId,omitempty"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	NumberOfPeople     int     `json:"numberOfPeople,omitempty"`
	TotalPrice         float64 `json:"totalPrice,omitempty"`
	Purpose            string  `json:"purpose,omitempty"`
	Status             string  `json:"status"`
	SpaceName          string  `json:"spaceName,omitempty"`
	SpaceLocation      string  `json:"spaceLocation,omitempty"`
	SpaceImageFilename string  `json:"spaceImageFilename,omitempty"`
	UserName           string  `json:"userName,omitempty"`
	UserEmail          string  `json:"userEmail,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	CancellationReason string  `json:"cancellationReason,omitempty"`
}

// BookingRequest is the create-booking payload for POST /api/bookings/save.
type BookingRequest struct {
	UserID       int     `json:"userId"`
	SpaceID      int     `json:"spaceId"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Duration     int     `json:"duration"` // hours
	Participants int     `json:"participants"`
	Purpose      string  `json:"purpose"`
	TotalPrice   float64 `json:"totalPrice"`
}

// BookingAdminUpdate carries the fields an admin may change on a booking.
type BookingAdminUpdate struct {
	Status         string `json:"status,omitempty"`
	NumberOfPeople int    `json:"numberOfPeople,omitempty"`
}
