// Package context carries request-scoped values between the shell middleware,
// the handlers and the service layer.
package context

import (
	"context"
	"log/slog"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySession holds the session snapshot the role gate decided on.
	KeySession ContextKey = "session"

	// KeyNotices holds the notice source drained into each response.
	KeyNotices ContextKey = "notices"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// NoticeSource hands out the notifications queued since the last call.
type NoticeSource interface {
	Drain() []service.Notice
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetSession stores the snapshot a route was rendered for.
func SetSession(c echo.Context, s entity.Session) {
	c.Set(string(KeySession), s)
}

// GetSession returns the snapshot stored by SetSession.
func GetSession(c echo.Context) (entity.Session, bool) {
	s, ok := c.Get(string(KeySession)).(entity.Session)

	return s, ok
}

// SetNoticeSource attaches the notifier queue to the request.
func SetNoticeSource(c echo.Context, src NoticeSource) {
	c.Set(string(KeyNotices), src)
}

// DrainNotices empties the attached queue. It returns nil when none is attached.
func DrainNotices(c echo.Context) []service.Notice {
	src, ok := c.Get(string(KeyNotices)).(NoticeSource)
	if !ok || src == nil {
		return nil
	}

	return src.Drain()
}
