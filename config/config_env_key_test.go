package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
			"keyPrefix": "sports-store",
		},
		"share": map[string]any{
			"publicBaseUrl": "",
		},
		"orders": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_KEYPREFIX", want: "storage.keyPrefix"},
		{envKey: "SHARE_PUBLICBASEURL", want: "share.publicBaseUrl"},
		{envKey: "ORDERS_BASEURL", want: "orders.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "sports-store", cfg.Storage.KeyPrefix)
	assert.Equal(t, "blob", cfg.Storage.Provider)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "memory", cfg.Orders.Provider)
	assert.Equal(t, 15*time.Second, cfg.Orders.Timeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Provider = "postgres"
	cfg.Storage.KeyPrefix = "custom"
	cfg.Orders.Provider = "http"
	cfg.Session.TTL = time.Hour

	applyDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Storage.Provider)
	assert.Empty(t, cfg.Storage.BucketURL)
	assert.Equal(t, "custom", cfg.Storage.KeyPrefix)
	assert.Equal(t, "http", cfg.Orders.Provider)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}
