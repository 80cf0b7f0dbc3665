package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HALLON_LOG_LEVEL.
const EnvPrefix = "HALLON"

// Loader handles configuration loading
type Loader struct {
	fs         afero.Fs
	configPath string
	v          *viper.Viper
}

// NewLoader creates a loader reading from fs. An empty configPath searches
// for hallon.{yaml,json,toml} in the working directory and $HOME/.hallon.
func NewLoader(fs afero.Fs, configPath string) *Loader {
	v := viper.New()
	v.SetFs(fs)

	def := DefaultConfig()
	v.SetDefault("appkey_file", def.AppKeyFile)
	v.SetDefault("user_agent", def.UserAgent)
	v.SetDefault("settings_path", def.SettingsPath)
	v.SetDefault("cache_path", def.CachePath)
	v.SetDefault("temp_root", def.TempRoot)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{fs: fs, configPath: configPath, v: v}
}

// Viper exposes the underlying instance so commands can bind flags.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the config file, if any, applies env and flag overrides and
// validates the result.
func (l *Loader) Load() (*Config, error) {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)
	} else {
		l.v.SetConfigName("hallon")
		l.v.AddConfigPath(".")
		l.v.AddConfigPath("$HOME/.hallon")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadApplicationKey returns the raw bytes of cfg.AppKeyFile.
func ReadApplicationKey(fs afero.Fs, cfg *Config) ([]byte, error) {
	if cfg.AppKeyFile == "" {
		return nil, errors.New("no application key file configured (appkey_file)")
	}
	key, err := afero.ReadFile(fs, cfg.AppKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read application key: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("application key file %s is empty", cfg.AppKeyFile)
	}
	return key, nil
}
