package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/platform/metrics"
)

const correlationIDHeader = "X-Correlation-ID"

// RequestLoggerMiddleware attaches a request-scoped slog.Logger to the
// request context, tagged with a correlation ID. An incoming
// X-Correlation-ID header is honored; otherwise a new one is generated.
// The correlation ID is echoed back on the response.
func RequestLoggerMiddleware(baseLogger *slog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(correlationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Writer.Header().Set(correlationIDHeader, correlationID)

		logger := baseLogger.With(
			slog.String("correlation_id", correlationID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		ctx := context.WithValue(c.Request.Context(), loggerCtxKey, logger)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		logger.Info("request completed",
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(duration.Seconds())
	}
}
