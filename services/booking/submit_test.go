package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"studyspace/api"
	"studyspace/models"
)

type fakeCreator struct {
	called  bool
	req     models.BookingRequest
	created *models.Booking
	err     error
}

func (f *fakeCreator) CreateBooking(_ context.Context, _ string, req models.BookingRequest) (*models.Booking, error) {
	f.called = true
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func submitInput() SubmitInput {
	return SubmitInput{
		User:         models.User{ID: 3},
		Space:        *testSpace(),
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "14:00",
		Duration:     2,
		Participants: 2,
		Purpose:      "group study",
	}
}

func TestSubmit_BuildsRequest(t *testing.T) {
	creator := &fakeCreator{created: &models.Booking{ID: 42, Status: models.StatusBooked}}
	sub := &Submitter{Creator: creator, Logger: zap.NewNop()}

	created, err := sub.Submit(context.Background(), "tok", submitInput(), []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("got booking %d", created.ID)
	}

	req := creator.req
	if req.StartTime != "2026-03-10T14:00:00" {
		t.Fatalf("start time %q", req.StartTime)
	}
	if req.EndTime != "2026-03-10T16:00:00" {
		t.Fatalf("end time %q", req.EndTime)
	}
	if req.UserID != 3 || req.SpaceID != testSpace().ID {
		t.Fatalf("ids %d/%d", req.UserID, req.SpaceID)
	}
	if req.Duration != 2 || req.Participants != 2 {
		t.Fatalf("duration/participants %d/%d", req.Duration, req.Participants)
	}
	if want := testSpace().Price * 2; req.TotalPrice != want {
		t.Fatalf("total price %v, want %v", req.TotalPrice, want)
	}
}

func TestSubmit_ValidationNeverHitsNetwork(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitInput)
		valid  []int
	}{
		{"no start selected", func(in *SubmitInput) { in.StartTime = "" }, []int{1, 2}},
		{"malformed start", func(in *SubmitInput) { in.StartTime = "2pm" }, []int{1, 2}},
		{"duration not offered", func(in *SubmitInput) {}, []int{1}},
		{"duration zero", func(in *SubmitInput) { in.Duration = 0 }, []int{1, 2}},
		{"no participants", func(in *SubmitInput) { in.Participants = 0 }, []int{1, 2}},
		{"over capacity", func(in *SubmitInput) { in.Participants = 99 }, []int{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := &fakeCreator{}
			sub := &Submitter{Creator: creator, Logger: zap.NewNop()}

			in := submitInput()
			tc.mutate(&in)

			_, err := sub.Submit(context.Background(), "tok", in, tc.valid)
			if !IsValidation(err) {
				t.Fatalf("want validation error, got %v", err)
			}
			if creator.called {
				t.Fatal("validation failure must not reach the API")
			}
		})
	}
}

func TestSubmit_DurationNeverClamped(t *testing.T) {
	// Selecting 4 hours when only {1,2} remain is a rejection, not a silent
	// shrink to 2.
	creator := &fakeCreator{}
	sub := &Submitter{Creator: creator, Logger: zap.NewNop()}

	in := submitInput()
	in.Duration = 4

	_, err := sub.Submit(context.Background(), "tok", in, []int{1, 2})
	if !IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
	if creator.called {
		t.Fatal("no request should be made")
	}
}

func TestSubmit_ErrorClassification(t *testing.T) {
	cases := []struct {
		name     string
		apiErr   error
		wantKind string
	}{
		{"conflict", &api.Error{Status: 409, Message: "slot already booked"}, KindConflict},
		{"bad request", &api.Error{Status: 400, Message: "end before start"}, KindBadRequest},
		{"unauthorized", &api.Error{Status: 401}, KindAuth},
		{"forbidden", &api.Error{Status: 403}, KindAuth},
		{"server error", &api.Error{Status: 500}, KindFailed},
		{"network", errors.New("connection refused"), KindFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := &fakeCreator{err: tc.apiErr}
			sub := &Submitter{Creator: creator, Logger: zap.NewNop()}

			_, err := sub.Submit(context.Background(), "tok", submitInput(), []int{1, 2, 3})
			var fe *FlowError
			if !errors.As(err, &fe) {
				t.Fatalf("want FlowError, got %v", err)
			}
			if fe.Kind != tc.wantKind {
				t.Fatalf("kind %s, want %s", fe.Kind, tc.wantKind)
			}
			if fe.Message == "" {
				t.Fatal("every failure must carry a message")
			}
		})
	}
}

func TestSubmit_ConflictKeepsServerMessage(t *testing.T) {
	creator := &fakeCreator{err: &api.Error{Status: 409, Message: "Space is not available for the selected time"}}
	sub := &Submitter{Creator: creator, Logger: zap.NewNop()}

	_, err := sub.Submit(context.Background(), "tok", submitInput(), []int{1, 2})
	var fe *FlowError
	if !errors.As(err, &fe) {
		t.Fatalf("want FlowError, got %v", err)
	}
	if fe.Message != "Space is not available for the selected time" {
		t.Fatalf("server message dropped: %q", fe.Message)
	}
}
