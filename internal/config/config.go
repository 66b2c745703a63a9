// Package config loads client settings from defaults, an optional TOML file,
// a .env file and SHOPEASY_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "SHOPEASY"
	ConfigDir  = ".shopeasy"
	configName = "config"
	configType = "toml"

	KeyBaseURL          = "api.base_url"
	KeyTimeout          = "api.timeout"
	KeyMaxResponseBytes = "api.max_response_bytes"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyLogFile          = "log.file"
	KeySecretsDir       = "secrets.dir"

	DefaultBaseURL          = "http://localhost:5000"
	DefaultTimeout          = 10 * time.Second
	DefaultMaxResponseBytes = 32 << 20
)

type Config struct {
	API     APIConfig
	Log     LogConfig
	Secrets SecretsConfig
	// Path is the config file that was read, empty when none was found.
	Path string
}

type APIConfig struct {
	BaseURL          string
	Timeout          time.Duration
	MaxResponseBytes int64
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

type SecretsConfig struct {
	Dir string
}

type LoadOptions struct {
	// ConfigFile forces a specific file instead of searching the home directory.
	ConfigFile string
	// DotEnvFiles are loaded before reading the environment. Missing files are ignored.
	DotEnvFiles []string
}

func Load(v *viper.Viper, opts LoadOptions) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := loadDotEnv(opts.DotEnvFiles); err != nil {
		return Config{}, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	SetDefaults(v, homeDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) || opts.ConfigFile != "" {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := fromViper(v)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Defaults returns the built-in settings without reading files or the
// environment.
func Defaults() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	SetDefaults(v, homeDir)
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		API: APIConfig{
			BaseURL:          strings.TrimSpace(v.GetString(KeyBaseURL)),
			Timeout:          v.GetDuration(KeyTimeout),
			MaxResponseBytes: v.GetInt64(KeyMaxResponseBytes),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
		Secrets: SecretsConfig{
			Dir: v.GetString(KeySecretsDir),
		},
		Path: v.ConfigFileUsed(),
	}
}

func SetDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyMaxResponseBytes, DefaultMaxResponseBytes)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySecretsDir, filepath.Join(homeDir, ConfigDir, "secrets"))
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("%s cannot be empty", KeyBaseURL)
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("%s must start with http:// or https://, got %q", KeyBaseURL, c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyTimeout)
	}
	if c.API.MaxResponseBytes <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyMaxResponseBytes, c.API.MaxResponseBytes)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.Log.Format)
	}
	return nil
}

// DefaultPath is where `config init` writes and Load looks by default.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDir, configName+"."+configType), nil
}

func loadDotEnv(files []string) error {
	for _, file := range files {
		// godotenv never overrides variables already present in the environment.
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}
