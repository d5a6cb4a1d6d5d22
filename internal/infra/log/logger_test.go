package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONIncludesServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "storefront"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("session_id", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["msg"])
	assert.Equal(t, "storefront", line["service"])
	assert.Equal(t, "abc", line["session_id"])
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
