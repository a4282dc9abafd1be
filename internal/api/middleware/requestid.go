// Package middleware holds the gin middleware stack for the scheduling
// API, adapted from the teacher's internal/http/middleware.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID ensures every request carries an X-Request-ID, generating one
// when absent or malformed, and stashes it in the gin context for the
// logger middleware to pick up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")

		l := len(requestID)
		if l < 1 || l > 64 {
			requestID = uuid.New().String()
		}

		c.Header("X-Request-ID", requestID)
		c.Set(RequestIDKey, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context, or "" if
// absent.
func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(RequestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
