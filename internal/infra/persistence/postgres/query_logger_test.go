package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCapturingQueryLogger(t *testing.T, cfg *config.Config) (*queryLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l, ok := newQueryLogger(base, cfg).(*queryLogger)
	require.True(t, ok)

	return l, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func selectKV() (string, int64) {
	return `SELECT * FROM "key_values" WHERE key = 'sports-store:reactions:x'`, 1
}

func TestQueryLogger_Levels(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.SlowQueryThreshold = 50 * time.Millisecond

	tests := []struct {
		name    string
		elapsed time.Duration
		err     error
		wantMsg string
	}{
		{name: "fast query is quiet", elapsed: time.Millisecond},
		{name: "record not found is quiet", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "failure", elapsed: time.Millisecond, err: errors.New("connection reset"), wantMsg: "Database query failed"},
		{name: "slow query", elapsed: time.Second, wantMsg: "Slow database query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCapturingQueryLogger(t, cfg)
			now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
			l.now = func() time.Time { return now }

			l.Trace(context.Background(), now.Add(-tt.elapsed), selectKV, tt.err)

			entries := decodeLines(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, entries)

				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantMsg, entries[0]["msg"])
			assert.Equal(t, "postgres", entries[0]["component"])
			assert.Contains(t, entries[0]["sql"], "key_values")
		})
	}
}

func TestQueryLogger_DebugLogsEveryStatementWithRequestLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newCapturingQueryLogger(t, cfg)

	scoped := l.logger.With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), scoped)
	l.Trace(ctx, time.Now(), selectKV, nil)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "Database query", entries[0]["msg"])
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.EqualValues(t, 1, entries[0]["rows"])
}

func TestQueryLogger_LogModeSilences(t *testing.T) {
	l, buf := newCapturingQueryLogger(t, nil)

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Hour), selectKV, errors.New("boom"))
	silent.Error(context.Background(), "dial %s", "tcp")
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "retrying %d", 2)
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "retrying 2", entries[0]["message"])
	assert.Equal(t, defaultSlowQueryThreshold, l.slowThreshold)
}
