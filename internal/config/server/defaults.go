package server

import "github.com/spf13/viper"

func GetServerDefault() BaseServerConfig {
	return BaseServerConfig{
		ShutdownTimeout: "10s",

		Log: LogServerConfig{
			Level:      "INFO",
			TimeFormat: "2006-01-02 15:04:05",
			File:       "",
			NoColor:    false,
			JSON:       false,
			NoTerminal: false,
			AccessLog:  true,
			Rotation: LogServerRotationConfig{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
				Compress:   false,
			},
		},
		HTTP: HTTPServerConfig{
			Address:        ":8080",
			ReadTimeout:    "30s",
			WriteTimeout:   "60s",
			IdleTimeout:    "120s",
			ActionEndpoint: false,
		},
		Store: StoreServerConfig{
			Type: "sqlite",
			SQLite: StoreSQLiteConfig{
				Path: "./data/filecase.db",
			},
		},
		Auth: AuthServerConfig{
			AdminEmail:        "",
			AdminPasswordHash: "",
			CookieSecure:      false,
			CookieMaxAge:      "24h",
		},
		Cache: CacheServerConfig{
			RackTTL:           "5m",
			InvalidateOnWrite: false,
		},
		Audit: AuditServerConfig{
			TimeZone: "Asia/Kuala_Lumpur",
		},
	}
}

func setDefaults() {
	defaults := GetServerDefault()

	viper.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.time_format", defaults.Log.TimeFormat)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("log.no_color", defaults.Log.NoColor)
	viper.SetDefault("log.json", defaults.Log.JSON)
	viper.SetDefault("log.no_terminal", defaults.Log.NoTerminal)
	viper.SetDefault("log.access_log", defaults.Log.AccessLog)
	viper.SetDefault("log.rotation.max_size", defaults.Log.Rotation.MaxSize)
	viper.SetDefault("log.rotation.max_backups", defaults.Log.Rotation.MaxBackups)
	viper.SetDefault("log.rotation.max_age", defaults.Log.Rotation.MaxAge)
	viper.SetDefault("log.rotation.compress", defaults.Log.Rotation.Compress)

	viper.SetDefault("http.address", defaults.HTTP.Address)
	viper.SetDefault("http.read_timeout", defaults.HTTP.ReadTimeout)
	viper.SetDefault("http.write_timeout", defaults.HTTP.WriteTimeout)
	viper.SetDefault("http.idle_timeout", defaults.HTTP.IdleTimeout)
	viper.SetDefault("http.action_endpoint", defaults.HTTP.ActionEndpoint)

	viper.SetDefault("store.type", defaults.Store.Type)
	viper.SetDefault("store.sqlite.path", defaults.Store.SQLite.Path)
	viper.SetDefault("store.sheets.spreadsheet_id", defaults.Store.Sheets.SpreadsheetID)
	viper.SetDefault("store.sheets.credentials_file", defaults.Store.Sheets.CredentialsFile)
	viper.SetDefault("store.sheets.endpoint", defaults.Store.Sheets.Endpoint)

	viper.SetDefault("auth.admin_email", defaults.Auth.AdminEmail)
	viper.SetDefault("auth.admin_password_hash", defaults.Auth.AdminPasswordHash)
	viper.SetDefault("auth.cookie_secure", defaults.Auth.CookieSecure)
	viper.SetDefault("auth.cookie_max_age", defaults.Auth.CookieMaxAge)

	viper.SetDefault("cache.rack_ttl", defaults.Cache.RackTTL)
	viper.SetDefault("cache.invalidate_on_write", defaults.Cache.InvalidateOnWrite)

	viper.SetDefault("audit.time_zone", defaults.Audit.TimeZone)
}
