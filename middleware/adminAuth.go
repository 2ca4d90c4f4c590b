package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRoleMiddleware gates the admin dashboard routes. Must run after
// SessionAuthMiddleware. The remote API re-checks the role on every call;
// this guard only keeps non-admins out of the dashboard surface.
func AdminRoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
