package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// configPaths are searched in order for filecase.yaml and .env files.
var configPaths = []string{".", "./config", "/etc/filecase", "$HOME/.filecase"}

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads every .env file found in dir. godotenv never
// overrides variables that are already set, so earlier files win.
func loadEnvFiles(dir string) {
	for _, envFile := range envFiles {
		godotenv.Load(filepath.Join(os.ExpandEnv(dir), envFile)) // Ignore missing files
	}
}

func initConfig(path string) error {
	loadEnvFiles(".")

	if path != "" {
		viper.SetConfigFile(path)
		loadEnvFiles(filepath.Dir(path))
	} else {
		viper.SetConfigName("filecase")
		viper.SetConfigType("yaml")
		for _, configPath := range configPaths {
			viper.AddConfigPath(configPath)
			loadEnvFiles(configPath)
		}
	}

	viper.SetEnvPrefix("FILECASE")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// envKeyReplacer maps nested keys to variables, so store.sqlite.path is
// read from FILECASE_STORE_SQLITE_PATH.
var envKeyReplacer = strings.NewReplacer(".", "_")
