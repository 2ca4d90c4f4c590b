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

// AuthHandler owns the session lifecycle: anonymous -> authenticated ->
// loggedOut. The remote API issues the token; this layer wraps it in a
// server-side session and hands the browser only the opaque session ID.
type AuthHandler struct {
	API      *api.Client
	Sessions *utils.SessionStore
	Logger   *zap.Logger
}

func NewAuthHandler(apiClient *api.Client, sessions *utils.SessionStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{API: apiClient, Sessions: sessions, Logger: logger}
}

// LoginHandler authenticates against the remote API and opens a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.API.Login(c.Request.Context(), creds)
	if err != nil {
		if api.IsAuth(err) || api.IsValidation(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": api.Message(err, "Invalid email or password.")})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Login failed. Please try again.")})
		return
	}
	if result.Token == "" {
		msg := result.Error
		if msg == "" {
			msg = "Invalid email or password."
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	user := h.resolveUser(c, result)
	session, err := h.Sessions.Create(c.Request.Context(), result.Token, user)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session."})
		return
	}

	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

// RegisterHandler creates an account upstream and opens a session with the
// returned token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if reg.Role == "" {
		reg.Role = "USER"
	}

	result, err := h.API.Register(c.Request.Context(), reg)
	if err != nil {
		if api.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": api.Message(err, "Invalid registration details.")})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Registration failed. Please try again.")})
		return
	}

	user := h.resolveUser(c, result)
	session, err := h.Sessions.Create(c.Request.Context(), result.Token, user)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session."})
		return
	}

	h.setSessionCookie(c, session)
	c.JSON(http.StatusCreated, gin.H{"user": session.User})
}

// CheckEmailHandler backs the registration form's inline email check.
func (h *AuthHandler) CheckEmailHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	exists, err := h.API.CheckEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Could not check email.")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// LogoutHandler tears the session down and clears the cookie.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
		if err := h.Sessions.Delete(c.Request.Context(), sessionID); err != nil {
			h.Logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// MeHandler returns the session's user.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

// resolveUser fills the session user from /api/users/me, falling back to the
// identity fields the login response carries.
func (h *AuthHandler) resolveUser(c *gin.Context, result *models.LoginResult) models.User {
	user, err := h.API.CurrentUser(c.Request.Context(), result.Token)
	if err != nil {
		h.Logger.Warn("could not resolve user profile, using login response", zap.Error(err))
		return models.User{
			ID:                     result.UserID,
			Role:                   result.Role,
			ProfilePictureFilename: result.ProfilePictureFilename,
		}
	}
	if user.Role == "" {
		user.Role = result.Role
	}
	return *user
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *models.Session) {
	maxAge := int(session.ExpiresAt.Sub(session.CreatedAt).Seconds())
	c.SetCookie(middleware.SessionCookie, session.ID, maxAge, "/", "", false, true)
}
