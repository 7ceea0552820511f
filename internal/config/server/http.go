package server

type HTTPServerConfig struct {
	Address      string `mapstructure:"address"       yaml:"address"`
	ReadTimeout  string `mapstructure:"read_timeout"  yaml:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  string `mapstructure:"idle_timeout"  yaml:"idle_timeout"`

	// ActionEndpoint mounts the action dispatcher on /exec
	ActionEndpoint bool `mapstructure:"action_endpoint" yaml:"action_endpoint"`
}

type AuthServerConfig struct {
	AdminEmail string `mapstructure:"admin_email" yaml:"admin_email"`
	// AdminPasswordHash is a bcrypt hash, see `filecase admin hash-password`
	AdminPasswordHash string `mapstructure:"admin_password_hash" yaml:"admin_password_hash"`
	CookieSecure      bool   `mapstructure:"cookie_secure"       yaml:"cookie_secure"`
	CookieMaxAge      string `mapstructure:"cookie_max_age"      yaml:"cookie_max_age"`
}

type CacheServerConfig struct {
	RackTTL string `mapstructure:"rack_ttl" yaml:"rack_ttl"`
	// InvalidateOnWrite drops the rack snapshot after every rack mutation
	InvalidateOnWrite bool `mapstructure:"invalidate_on_write" yaml:"invalidate_on_write"`
}

type AuditServerConfig struct {
	TimeZone string `mapstructure:"time_zone" yaml:"time_zone"`
}
