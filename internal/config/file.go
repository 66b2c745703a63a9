package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	API     apiSchema     `toml:"api"`
	Log     logSchema     `toml:"log"`
	Secrets secretsSchema `toml:"secrets"`
}

type apiSchema struct {
	BaseURL          string `toml:"base_url"`
	Timeout          string `toml:"timeout"`
	MaxResponseBytes int64  `toml:"max_response_bytes"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type secretsSchema struct {
	Dir string `toml:"dir"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		API: apiSchema{
			BaseURL:          cfg.API.BaseURL,
			Timeout:          cfg.API.Timeout.String(),
			MaxResponseBytes: cfg.API.MaxResponseBytes,
		},
		Log: logSchema{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File:   cfg.Log.File,
		},
		Secrets: secretsSchema{Dir: cfg.Secrets.Dir},
	}
}

// Encode renders cfg the way WriteFile stores it.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}
	return data, nil
}

// WriteFile stores cfg at path through a temp file and rename. An existing
// file is only replaced when force is set.
func WriteFile(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
