package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"studyspace/api"
	"studyspace/models"
)

// BookingCreator is the slice of the StudySpace API the submission flow needs.
type BookingCreator interface {
	CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error)
}

// SubmitInput is everything the dialog has collected when the user confirms.
type SubmitInput struct {
	User         models.User
	Space        models.Space
	Date         time.Time
	StartTime    string // "HH:MM", must be a generated slot value
	Duration     int    // hours
	Participants int
	Purpose      string
}

// Submitter runs the booking submission flow. All failures are terminal for
// the attempt; the caller keeps the form state for correction.
type Submitter struct {
	Creator BookingCreator
	Logger  *zap.Logger
}

// buildRequest validates the dialog preconditions and assembles the create
// payload. Timestamps are local wall clock in "YYYY-MM-DDTHH:MM:SS" form, no
// UTC conversion. An invalid duration is rejected, never clamped.
func buildRequest(in SubmitInput, validDurations []int) (models.BookingRequest, error) {
	if in.StartTime == "" {
		return models.BookingRequest{}, NewValidationError("Please select a start time.")
	}
	startMinutes, ok := parseClock(in.StartTime)
	if !ok {
		return models.BookingRequest{}, NewValidationError("Please select a valid start time.")
	}

	durationOK := false
	for _, d := range validDurations {
		if d == in.Duration {
			durationOK = true
			break
		}
	}
	if !durationOK {
		return models.BookingRequest{}, NewValidationError("The selected duration is not available for this start time.")
	}

	if in.Participants < 1 {
		return models.BookingRequest{}, NewValidationError("At least one participant is required.")
	}
	if in.Space.Capacity > 0 && in.Participants > in.Space.Capacity {
		return models.BookingRequest{}, NewValidationError("Participant count exceeds the space capacity.")
	}

	start := at(in.Date, startMinutes)
	end := start.Add(time.Duration(in.Duration) * time.Hour)

	return models.BookingRequest{
		UserID:       in.User.ID,
		SpaceID:      in.Space.ID,
		StartTime:    start.Format(models.TimestampLayout),
		EndTime:      end.Format(models.TimestampLayout),
		Duration:     in.Duration,
		Participants: in.Participants,
		Purpose:      in.Purpose,
		TotalPrice:   in.Space.Price * float64(in.Duration),
	}, nil
}

// Submit validates, posts the booking, and maps the response to a dialog
// outcome. A 409 means a concurrent booker won the slot; local availability
// is never flipped back to available on that path, the caller must re-fetch.
func (s *Submitter) Submit(ctx context.Context, token string, in SubmitInput, validDurations []int) (*models.Booking, error) {
	req, err := buildRequest(in, validDurations)
	if err != nil {
		return nil, err
	}

	created, err := s.Creator.CreateBooking(ctx, token, req)
	if err != nil {
		s.Logger.Warn("booking submission failed",
			zap.Int("spaceId", in.Space.ID),
			zap.String("start", req.StartTime),
			zap.Error(err))
		return nil, classify(err)
	}

	s.Logger.Info("booking created",
		zap.Int("bookingId", created.ID),
		zap.Int("spaceId", in.Space.ID),
		zap.String("start", req.StartTime),
		zap.Int("duration", in.Duration))
	return created, nil
}

// classify maps a create-endpoint error to a dialog-facing FlowError with a
// human-readable message: server text preferred, generic per-category
// fallback otherwise.
func classify(err error) error {
	switch {
	case api.IsConflict(err):
		return &FlowError{
			Kind:    KindConflict,
			Message: api.Message(err, "This slot was just booked by someone else. Please pick another time."),
			err:     err,
		}
	case api.IsValidation(err):
		return &FlowError{
			Kind:    KindBadRequest,
			Message: api.Message(err, "Invalid booking request."),
			err:     err,
		}
	case api.IsAuth(err):
		return &FlowError{
			Kind:    KindAuth,
			Message: "Authentication error. Please log in again.",
			err:     err,
		}
	default:
		return &FlowError{
			Kind:    KindFailed,
			Message: api.Message(err, "Failed to create booking. Please try again."),
			err:     err,
		}
	}
}
