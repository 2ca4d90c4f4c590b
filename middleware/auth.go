package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyspace/models"
	"studyspace/utils"
)

// SessionCookie is the browser cookie carrying the opaque session ID.
const SessionCookie = "ssid"

// sessionKey is the gin context key the resolved session is stored under.
const sessionKey = "session"

// SessionAuthMiddleware resolves the session cookie and aborts with 401 when
// no live session exists. Handlers downstream read the session via
// CurrentSession.
func SessionAuthMiddleware(store *utils.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		session, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please log in again."})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session resolved by SessionAuthMiddleware.
func CurrentSession(c *gin.Context) *models.Session {
	val, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, ok := val.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
