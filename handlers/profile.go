package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyspace/api"
	"studyspace/middleware"
	"studyspace/models"
	"studyspace/utils"
)

// ProfileHandler serves the profile page: view and edit the session user.
type ProfileHandler struct {
	API      *api.Client
	Sessions *utils.SessionStore
	Logger   *zap.Logger
}

func NewProfileHandler(apiClient *api.Client, sessions *utils.SessionStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{API: apiClient, Sessions: sessions, Logger: logger}
}

// GetProfileHandler returns the session user's profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

// UpdateProfileHandler updates the profile upstream, then keeps the session
// copy in sync so subsequent pages render the new details.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	// Role changes go through the admin dashboard, not the profile page.
	update.Role = ""

	updated, err := h.API.UpdateUser(c.Request.Context(), session.Token, session.User.ID, update)
	if err != nil {
		if api.IsAuth(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please log in again."})
			return
		}
		if api.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": api.Message(err, "Invalid profile details.")})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not update profile.")})
		return
	}

	// Preserve identity fields the update response may omit.
	if updated.ID == 0 {
		updated.ID = session.User.ID
	}
	if updated.Role == "" {
		updated.Role = session.User.Role
	}
	if updated.ProfilePictureFilename == "" {
		updated.ProfilePictureFilename = session.User.ProfilePictureFilename
	}
	session.User = *updated
	if err := h.Sessions.Update(c.Request.Context(), session); err != nil {
		h.Logger.Warn("failed to refresh session user", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"user": session.User})
}
