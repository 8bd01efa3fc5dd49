package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "solarwin"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. SOLARWIN_DRY_RUN=true.
	EnvPrefix = "SOLARWIN"
)

// Config holds the user-tunable settings.
type Config struct {
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
	DryRun   bool   `mapstructure:"dry_run" toml:"dry_run"`
	TempDir  string `mapstructure:"temp_dir" toml:"temp_dir"`
	Confirm  bool   `mapstructure:"confirm" toml:"confirm"`
}

// LoadOptions controls where Load looks for the config file.
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set and must exist.
	ConfigFilePath string
	// ConfigDirPath overrides Dir().
	ConfigDirPath string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		DryRun:   false,
		TempDir:  "",
		Confirm:  true,
	}
}

// Dir returns the per-user configuration directory, %APPDATA%\solarwin on Windows.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the path of the config file inside dir, or inside Dir() when dir is empty.
func DefaultPath(dir string) (string, error) {
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load merges defaults, the config file and SOLARWIN_* environment variables.
// It returns the config and the path of the file that was read, if any.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("dry_run", defaults.DryRun)
	v.SetDefault("temp_dir", defaults.TempDir)
	v.SetDefault("confirm", defaults.Confirm)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s: %w", opts.ConfigFilePath, err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			d, err := Dir()
			if err != nil {
				return nil, "", err
			}
			dir = d
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to read config: %w", err)
			}
		} else {
			resolvedPath = v.ConfigFileUsed()
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, resolvedPath, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "fatal":
		return nil
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, error or fatal)", c.LogLevel)
	}
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteDefault writes the default config to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	return Encode(f, DefaultConfig())
}
