// Package config loads runtime settings from an optional config file and
// MAGICMEAL_* environment variables via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the CLI honors.
type Config struct {
	// DataDir is where the durable JSON records live.
	DataDir string `mapstructure:"data_dir"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFile receives log output. "stderr" logs to the terminal; the
	// default is a file so logs never bleed into TUI output.
	LogFile string `mapstructure:"log_file"`
}

// Load reads config.yaml from the data dir (if present) and the
// environment. Environment wins over file, file over defaults.
func Load() (Config, error) {
	v := viper.New()

	dataDir := defaultDataDir()
	if env := os.Getenv("MAGICMEAL_DATA_DIR"); env != "" {
		dataDir = env
	}
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(dataDir, "magicmeal.log"))

	v.SetEnvPrefix("MAGICMEAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	// A relocated data dir moves the default log file with it, unless the
	// log file was set explicitly.
	if cfg.DataDir != dataDir && !v.IsSet("log_file") && cfg.LogFile == filepath.Join(dataDir, "magicmeal.log") {
		cfg.LogFile = filepath.Join(cfg.DataDir, "magicmeal.log")
	}
	return cfg, nil
}

// defaultDataDir resolves the per-user data directory, falling back to a
// dot directory in $HOME when the platform config dir is unknown.
func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "magicmeal")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".magicmeal"
	}
	return filepath.Join(home, ".magicmeal")
}
