package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config is the hallon CLI configuration.
type Config struct {
	// AppKeyFile points at the binary libspotify application key.
	AppKeyFile   string `mapstructure:"appkey_file"`
	UserAgent    string `mapstructure:"user_agent"`
	SettingsPath string `mapstructure:"settings_path"`
	CachePath    string `mapstructure:"cache_path"`
	// TempRoot is the parent of generated settings directories.
	TempRoot string `mapstructure:"temp_root"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console, json
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want %s or %s)", c.Log.Format, FormatConsole, FormatJSON)
	}
	return nil
}
