package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id on both request and response.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID ensures every request carries an id, reusing the caller's
// X-Request-ID header when present and minting a fresh UUID otherwise. The
// id is echoed on the response so clients can correlate log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or an empty string when
// the middleware did not run.
func GetRequestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDKey); exists {
		if requestID, ok := value.(string); ok {
			return requestID
		}
	}
	return ""
}
