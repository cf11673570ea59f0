package server

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"postboard/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, reusing a well-formed
// inbound X-Request-ID when the caller supplies one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// LoggingMiddleware logs every request with structured attributes
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rw := newResponseWriter(c.Writer)
		c.Writer = rw

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", float64(latency.Microseconds()) / 1000,
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"response_size", rw.Size(),
		}

		if query := redactQuery(c.Request.URL.RawQuery); query != "" {
			attrs = append(attrs, "query", query)
		}
		if userID, ok := auth.CurrentUserID(c); ok {
			attrs = append(attrs, "user_id", userID)
		}
		if username := c.GetString(auth.ContextUsername); username != "" {
			attrs = append(attrs, "username", username)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.Error("Request failed - server error", attrs...)
		case status >= 400:
			slog.Warn("Request failed - client error", attrs...)
		default:
			slog.Info("Request completed", attrs...)
		}
	}
}

// sensitiveParams never reach the logs in clear text
var sensitiveParams = map[string]bool{
	"password":     true,
	"token":        true,
	"access_token": true,
}

// redactQuery masks sensitive query values. A query that does not parse is
// dropped entirely since its secrets cannot be located.
func redactQuery(raw string) string {
	if raw == "" {
		return ""
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return "[unparsable]"
	}
	for key := range values {
		if sensitiveParams[strings.ToLower(key)] {
			values[key] = []string{"REDACTED"}
		}
	}
	return values.Encode()
}
