package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"studyspace/models"
)

// BookingsForSpaceDate returns the bookings for one space on one calendar
// date, for overlap checking in the booking dialog.
func (c *Client) BookingsForSpaceDate(ctx context.Context, token string, spaceID int, date time.Time) ([]models.Booking, error) {
	path := fmt.Sprintf("/api/bookings/space/%d/date/%s", spaceID, date.Format(models.DateLayout))
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, path, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a new booking.
func (c *Client) CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings/save", token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingsForUser returns the given user's bookings.
func (c *Client) BookingsForUser(ctx context.Context, token string, userID int) ([]models.Booking, error) {
	path := fmt.Sprintf("/api/bookings/user/%d", userID)
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, path, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking sets a booking's status to CANCELLED with the given reason.
func (c *Client) CancelBooking(ctx context.Context, token string, id int, reason string) (*models.Booking, error) {
	body := map[string]string{"reason": reason}
	var booking models.Booking
	path := fmt.Sprintf("/api/bookings/%d/cancel", id)
	if err := c.do(ctx, http.MethodPut, path, token, body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DetailedBookings returns every booking with denormalized space and user
// fields. Admin only upstream.
func (c *Client) DetailedBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/detailed", token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// AdminUpdateBooking changes a booking's status or participant count.
func (c *Client) AdminUpdateBooking(ctx context.Context, token string, id int, update models.BookingAdminUpdate) (*models.Booking, error) {
	var booking models.Booking
	path := fmt.Sprintf("/api/bookings/updateAdmin/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, update, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking hard-deletes a booking record. Admin only upstream.
func (c *Client) DeleteBooking(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/delete/%d", id), token, nil, nil)
}
