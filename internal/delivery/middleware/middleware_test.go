package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		expectSame bool
	}{
		{name: "reuses client request id", header: "client-req-1", expectSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces id with whitespace", header: "bad id"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxRequestID string
			var hasLogger bool
			mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			err := mw.Process(func(c echo.Context) error {
				ctxRequestID = deliverycontext.RequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.LoggerFromContext(c.Request().Context()) != nil

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxRequestID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.True(t, hasLogger)
			if tt.expectSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart?x=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	sessionID := uuid.New()

	mw := NewLoggerMiddleware(logger, cfg)
	err := mw.Handle(func(c echo.Context) error {
		deliverycontext.BindSession(c, sessionID, logger)

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP Request"`)
	assert.Contains(t, out, `"uri":"/api/v1/cart"`)
	assert.Contains(t, out, `"query":"x=1"`)
	assert.Contains(t, out, sessionID.String())
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	mw := NewLoggerMiddleware(logger, &config.Config{})
	require.NoError(t, mw.Handle(func(c echo.Context) error { return nil })(c))
	assert.Empty(t, buf.String())
}
