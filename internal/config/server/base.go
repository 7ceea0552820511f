package server

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type BaseServerConfig struct {
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	Log   LogServerConfig   `mapstructure:"log"   yaml:"log"`
	HTTP  HTTPServerConfig  `mapstructure:"http"  yaml:"http"`
	Store StoreServerConfig `mapstructure:"store" yaml:"store"`
	Auth  AuthServerConfig  `mapstructure:"auth"  yaml:"auth"`
	Cache CacheServerConfig `mapstructure:"cache" yaml:"cache"`
	Audit AuditServerConfig `mapstructure:"audit" yaml:"audit"`
}

func LoadServerConfig() (*BaseServerConfig, error) {
	cfg := &BaseServerConfig{}

	setDefaults()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values viper cannot type-check on its own
func (cfg *BaseServerConfig) Validate() error {
	switch cfg.Store.Type {
	case "sqlite":
		if cfg.Store.SQLite.Path == "" {
			return fmt.Errorf("store.sqlite.path is required for the sqlite store")
		}
	case "sheets":
		if cfg.Store.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("store.sheets.spreadsheet_id is required for the sheets store")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store type '%s' (expected sqlite, sheets or memory)", cfg.Store.Type)
	}

	for key, value := range map[string]string{
		"shutdown_timeout":    cfg.ShutdownTimeout,
		"http.read_timeout":   cfg.HTTP.ReadTimeout,
		"http.write_timeout":  cfg.HTTP.WriteTimeout,
		"http.idle_timeout":   cfg.HTTP.IdleTimeout,
		"auth.cookie_max_age": cfg.Auth.CookieMaxAge,
		"cache.rack_ttl":      cfg.Cache.RackTTL,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s: invalid duration '%s': %w", key, value, err)
		}
	}

	if _, err := time.LoadLocation(cfg.Audit.TimeZone); err != nil {
		return fmt.Errorf("audit.time_zone: %w", err)
	}

	return nil
}

// Duration parses a validated duration field, falling back when it is empty
func Duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
