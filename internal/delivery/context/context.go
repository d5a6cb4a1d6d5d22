// Package context carries per-request values between the echo middleware chain,
// the handlers and the layers below them.
//
// Middleware binds values once; handlers read them from echo.Context, and
// usecases and infra read them from the request's context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeySessionID ContextKey = "session_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// BindRequest records requestID on c and on the request context, together with a
// logger that tags every line with it.
func BindRequest(c echo.Context, requestID string, base *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, base.With(slog.String(string(KeyRequestID), requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// BindSession records the visitor session resolved from the bearer token and extends
// the request logger with it. fallback is used when no request logger is bound yet.
func BindSession(c echo.Context, sessionID uuid.UUID, fallback *slog.Logger) {
	c.Set(string(KeySessionID), sessionID)

	ctx := c.Request().Context()
	ctx = WithLogger(ctx, Logger(ctx, fallback).With(slog.String(string(KeySessionID), sessionID.String())))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the request ID bound to c, or a fresh UUID when the
// request ID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// GetSessionID returns the session bound by BindSession. A nil UUID counts as absent.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeySessionID)).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// LoggerFromContext returns the request-scoped logger, or nil outside a request.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// Logger returns the request-scoped logger, falling back to fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}
