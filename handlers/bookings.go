package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyspace/api"
	"studyspace/middleware"
	"studyspace/models"
	"studyspace/services/booking"
	"studyspace/services/spaces"
	"studyspace/utils"
)

// BookingHandler serves the booking dialog (slot grid, duration menu,
// submission) and the user's booking list.
type BookingHandler struct {
	API       *api.Client
	Spaces    spaces.SpaceService
	Slots     booking.SlotService
	Submitter *booking.Submitter
	Sessions  *utils.SessionStore
	Logger    *zap.Logger
}

func NewBookingHandler(apiClient *api.Client, spaceSvc spaces.SpaceService, slotSvc booking.SlotService, submitter *booking.Submitter, sessions *utils.SessionStore, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		API:       apiClient,
		Spaces:    spaceSvc,
		Slots:     slotSvc,
		Submitter: submitter,
		Sessions:  sessions,
		Logger:    logger,
	}
}

// expireSession tears down the current session after an upstream 401/403:
// the token is no longer valid for any call, so the UI must re-login.
func (h *BookingHandler) expireSession(c *gin.Context, session *models.Session) {
	if err := h.Sessions.Delete(c.Request.Context(), session.ID); err != nil {
		h.Logger.Warn("failed to delete expired session", zap.Error(err))
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please log in again."})
}

// SlotGridHandler backs the dialog's date selection: it returns the hourly
// slot grid for a space and date, each slot annotated with availability and
// the durations it can anchor. Optional start/duration query params get the
// current selection re-validated (the duration silently resets to the first
// valid option when the start change invalidated it).
//
// When the bookings fetch fails, every slot comes back unavailable alongside
// the error message; a false "all available" grid is never shown.
func (h *BookingHandler) SlotGridHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)

	spaceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid space id"})
		return
	}
	date, err := time.ParseInLocation(models.DateLayout, c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	space, err := h.Spaces.Get(c.Request.Context(), spaceID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not load space.")})
		return
	}

	now := time.Now()
	dialogKey := fmt.Sprintf("%s:%d", session.ID, spaceID)
	grid, fetchErr := h.Slots.Resolve(c.Request.Context(), session.Token, dialogKey, space, date, now)

	if fetchErr != nil && api.IsAuth(fetchErr) {
		h.expireSession(c, session)
		return
	}
	if grid.Stale {
		// A newer request for this dialog superseded us; its response is the
		// one that counts.
		c.JSON(http.StatusOK, gin.H{"stale": true})
		return
	}

	payload := gin.H{
		"date":  date.Format(models.DateLayout),
		"slots": grid.Slots,
	}
	if fetchErr != nil {
		payload["error"] = api.Message(fetchErr, "Could not load availability. All slots are shown as unavailable.")
	}

	if start := c.Query("start"); start != "" {
		h.annotateSelection(payload, grid, space, date, start, c.Query("duration"))
	}

	c.JSON(http.StatusOK, payload)
}

// annotateSelection re-validates the dialog's current start/duration pick
// against the freshly resolved grid.
func (h *BookingHandler) annotateSelection(payload gin.H, grid *booking.SlotGrid, space *models.Space, date time.Time, start, durationParam string) {
	startAt, ok := booking.SlotStart(date, start)
	if !ok {
		return
	}
	valid := booking.ValidDurations(startAt, space.ClosingTime, grid.Availability.UnavailableTimes, grid.Intervals)

	selected := 1
	if d, err := strconv.Atoi(durationParam); err == nil {
		selected = d
	}

	payload["selectedStart"] = start
	payload["validDurations"] = valid
	payload["duration"] = booking.NormalizeDuration(selected, valid)
}

// CreateBookingHandler runs the submission flow. The duration is re-validated
// against a fresh availability fetch before anything is posted; an invalid
// selection is rejected, never clamped.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var input struct {
		SpaceID      int    `json:"spaceId"`
		Date         string `json:"date"`
		StartTime    string `json:"startTime"`
		Duration     int    `json:"duration"`
		Participants int    `json:"participants"`
		Purpose      string `json:"purpose"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation(models.DateLayout, input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	space, err := h.Spaces.Get(c.Request.Context(), input.SpaceID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not load space.")})
		return
	}

	now := time.Now()
	dialogKey := fmt.Sprintf("%s:%d", session.ID, input.SpaceID)
	grid, fetchErr := h.Slots.Resolve(c.Request.Context(), session.Token, dialogKey, space, date, now)
	if fetchErr != nil {
		if api.IsAuth(fetchErr) {
			h.expireSession(c, session)
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": api.Message(fetchErr, "Could not verify availability. Please try again.")})
		return
	}

	var valid []int
	if startAt, ok := booking.SlotStart(date, input.StartTime); ok {
		valid = booking.ValidDurations(startAt, space.ClosingTime, grid.Availability.UnavailableTimes, grid.Intervals)
	}

	created, err := h.Submitter.Submit(c.Request.Context(), session.Token, booking.SubmitInput{
		User:         session.User,
		Space:        *space,
		Date:         date,
		StartTime:    input.StartTime,
		Duration:     input.Duration,
		Participants: input.Participants,
		Purpose:      input.Purpose,
	}, valid)
	if err != nil {
		status, msg := submitErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// submitErrorStatus maps a submission failure to the response status and
// message the dialog shows inline. No failure is retried automatically.
func submitErrorStatus(err error) (int, string) {
	fe, ok := err.(*booking.FlowError)
	if !ok {
		return http.StatusBadGateway, "Failed to create booking. Please try again."
	}
	switch fe.Kind {
	case booking.KindValidation, booking.KindBadRequest:
		return http.StatusBadRequest, fe.Message
	case booking.KindConflict:
		return http.StatusConflict, fe.Message
	case booking.KindAuth:
		return http.StatusUnauthorized, fe.Message
	default:
		return http.StatusBadGateway, fe.Message
	}
}

// ListBookingsHandler returns the current user's bookings with display
// statuses projected (BOOKED reads as COMPLETED once its end has passed).
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)

	bookings, err := h.API.BookingsForUser(c.Request.Context(), session.Token, session.User.ID)
	if err != nil {
		if api.IsAuth(err) {
			h.expireSession(c, session)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not load bookings.")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": booking.ProjectBookings(bookings, time.Now())})
}

// CancelBookingHandler cancels one of the user's bookings with a reason.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cancelled, err := h.API.CancelBooking(c.Request.Context(), session.Token, id, input.Reason)
	if err != nil {
		if api.IsAuth(err) {
			h.expireSession(c, session)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not cancel booking.")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": cancelled})
}
