package server

// StoreServerConfig selects and configures the record store backend
type StoreServerConfig struct {
	// Type is one of "sqlite", "sheets" or "memory"
	Type   string            `mapstructure:"type"   yaml:"type"`
	SQLite StoreSQLiteConfig `mapstructure:"sqlite" yaml:"sqlite"`
	Sheets StoreSheetsConfig `mapstructure:"sheets" yaml:"sheets"`
}

type StoreSQLiteConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// StoreSheetsConfig points at the legacy archive workbook
type StoreSheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"   yaml:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
	Endpoint        string `mapstructure:"endpoint"         yaml:"endpoint,omitempty"`
}
