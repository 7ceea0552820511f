package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerDefault_IsValid(t *testing.T) {
	cfg := GetServerDefault()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "5m", cfg.Cache.RackTTL)
	assert.Equal(t, "Asia/Kuala_Lumpur", cfg.Audit.TimeZone)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *BaseServerConfig)
		errMsg string
	}{
		{"unknown store", func(cfg *BaseServerConfig) { cfg.Store.Type = "postgres" }, "unknown store type"},
		{"sqlite without path", func(cfg *BaseServerConfig) { cfg.Store.SQLite.Path = "" }, "store.sqlite.path"},
		{"sheets without id", func(cfg *BaseServerConfig) { cfg.Store.Type = "sheets" }, "spreadsheet_id"},
		{"bad ttl", func(cfg *BaseServerConfig) { cfg.Cache.RackTTL = "soon" }, "cache.rack_ttl"},
		{"bad zone", func(cfg *BaseServerConfig) { cfg.Audit.TimeZone = "Mars/Olympus" }, "audit.time_zone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetServerDefault()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, Duration("90s", time.Minute))
	assert.Equal(t, time.Minute, Duration("", time.Minute))
}
