package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"studyspace/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestClient_RequestShape(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":5,"status":"BOOKED","startTime":"2026-03-10T14:00:00","endTime":"2026-03-10T16:00:00"}`))
	})

	booking, err := c.CreateBooking(context.Background(), "tok-123", models.BookingRequest{
		UserID: 1, SpaceID: 2, StartTime: "2026-03-10T14:00:00", EndTime: "2026-03-10T16:00:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.ID != 5 || booking.Status != models.StatusBooked {
		t.Fatalf("decoded booking %+v", booking)
	}
	if gotPath != "/api/bookings/save" {
		t.Fatalf("path %q", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type %q", gotContentType)
	}
}

func TestClient_NoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	if _, err := c.ListSpaces(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("authorization should be absent, got %q", gotAuth)
	}
}

func TestClient_ErrorBodyParsing(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", 409, `{"message":"Space is not available"}`, "Space is not available"},
		{"error field", 400, `{"error":"end before start"}`, "end before start"},
		{"raw text", 500, "internal failure\n", "internal failure"},
		{"empty body", 404, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := c.GetSpace(context.Background(), 1)
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("want *Error, got %v", err)
			}
			if apiErr.Status != tc.status {
				t.Fatalf("status %d, want %d", apiErr.Status, tc.status)
			}
			if apiErr.Message != tc.wantMsg {
				t.Fatalf("message %q, want %q", apiErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestClient_ErrorPredicates(t *testing.T) {
	if !IsAuth(&Error{Status: http.StatusUnauthorized}) || !IsAuth(&Error{Status: http.StatusForbidden}) {
		t.Fatal("401 and 403 are both auth errors")
	}
	if IsAuth(&Error{Status: http.StatusNotFound}) {
		t.Fatal("404 is not an auth error")
	}
	if !IsConflict(&Error{Status: http.StatusConflict}) {
		t.Fatal("409 is a conflict")
	}
	if !IsValidation(&Error{Status: http.StatusBadRequest}) {
		t.Fatal("400 is a validation error")
	}
	if IsNetwork(&Error{Status: http.StatusInternalServerError}) {
		t.Fatal("an HTTP response is not a network failure")
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := NewClient(addr, time.Second, zap.NewNop())
	_, err := c.ListSpaces(context.Background())
	if err == nil {
		t.Fatal("expected error against closed server")
	}
	if !IsNetwork(err) {
		t.Fatalf("want network error, got %v", err)
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatal("transport failure must not look like an API error")
	}
}

func TestClient_BookingsForSpaceDatePath(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	if _, err := c.BookingsForSpaceDate(context.Background(), "tok", 7, date); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/bookings/space/7/date/2026-03-10" {
		t.Fatalf("path %q", gotPath)
	}
}

func TestMessageFallback(t *testing.T) {
	if got := Message(&Error{Status: 500}, "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	if got := Message(&Error{Status: 409, Message: "taken"}, "fallback"); got != "taken" {
		t.Fatalf("got %q", got)
	}
	if got := Message(errors.New("boom"), "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
}
