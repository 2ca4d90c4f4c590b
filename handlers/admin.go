package handlers

import (
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
)

// AdminHandler serves the admin dashboard: user, space, and booking CRUD,
// all proxied to the remote API under the admin's own token.
type AdminHandler struct {
	API    *api.Client
	Spaces spaces.SpaceService
	Logger *zap.Logger
}

func NewAdminHandler(apiClient *api.Client, spaceSvc spaces.SpaceService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{API: apiClient, Spaces: spaceSvc, Logger: logger}
}

// forward writes the standard admin error response for an upstream failure.
func (h *AdminHandler) forward(c *gin.Context, err error, fallback string) {
	switch {
	case api.IsAuth(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please log in again."})
	case api.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": api.Message(err, fallback)})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, fallback)})
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// --- Users ---

func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	users, err := h.API.ListUsers(c.Request.Context(), session.Token)
	if err != nil {
		h.forward(c, err, "Could not load users.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) CreateUserHandler(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.API.Register(c.Request.Context(), reg)
	if err != nil {
		h.forward(c, err, "Could not create user.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"userId": result.UserID})
}

func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	user, err := h.API.UpdateUser(c.Request.Context(), session.Token, id, update)
	if err != nil {
		h.forward(c, err, "Could not update user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteUser(c.Request.Context(), session.Token, id); err != nil {
		h.forward(c, err, "Could not delete user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Spaces ---

func (h *AdminHandler) CreateSpaceHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	var input models.SpaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	space, err := h.API.CreateSpace(c.Request.Context(), session.Token, input)
	if err != nil {
		h.forward(c, err, "Could not create space.")
		return
	}
	h.Spaces.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"space": space})
}

func (h *AdminHandler) UpdateSpaceHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.SpaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	space, err := h.API.UpdateSpace(c.Request.Context(), session.Token, id, input)
	if err != nil {
		h.forward(c, err, "Could not update space.")
		return
	}
	h.Spaces.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"space": space})
}

func (h *AdminHandler) DeleteSpaceHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteSpace(c.Request.Context(), session.Token, id); err != nil {
		h.forward(c, err, "Could not delete space.")
		return
	}
	h.Spaces.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Bookings ---

// ListBookingsHandler returns every booking with denormalized space/user
// fields, display statuses projected the same way the user listing does.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	bookings, err := h.API.DetailedBookings(c.Request.Context(), session.Token)
	if err != nil {
		h.forward(c, err, "Could not load bookings.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": booking.ProjectBookings(bookings, time.Now())})
}

func (h *AdminHandler) UpdateBookingHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var update models.BookingAdminUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.API.AdminUpdateBooking(c.Request.Context(), session.Token, id, update)
	if err != nil {
		h.forward(c, err, "Could not update booking.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// DeleteBookingHandler hard-deletes a booking record.
func (h *AdminHandler) DeleteBookingHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteBooking(c.Request.Context(), session.Token, id); err != nil {
		h.forward(c, err, "Could not delete booking.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
