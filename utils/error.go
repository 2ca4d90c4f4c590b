package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler recovers panics anywhere in the handler chain and responds
// with the same {"error": ...} envelope the handlers use, so the pages parse
// one error shape on every path.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Something went wrong. Please try again later."})
			}
		}()
		c.Next()
	}
}
