package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request identifier in both directions
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// RequestID assigns every request an identifier, reusing the caller's one when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the identifier set by RequestID, or an empty string
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger stores a request-scoped logger in the context and writes one
// structured entry per completed request
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := logger.WithField("request_id", GetRequestID(c))
		c.Set(loggerKey, entry)

		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"route":     c.FullPath(),
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.WithFields(fields).Error("Request failed")
		case status >= 400:
			entry.WithFields(fields).Warn("Request rejected")
		default:
			entry.WithFields(fields).Info("Request handled")
		}
	}
}

// Logger returns the request-scoped logger, falling back to the standard logrus logger
func Logger(c *gin.Context) *logrus.Entry {
	if value, exists := c.Get(loggerKey); exists {
		if entry, ok := value.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.WithField("request_id", GetRequestID(c))
}
