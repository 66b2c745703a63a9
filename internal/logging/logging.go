package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/shopeasy-cli/internal/config"
	"github.com/sirupsen/logrus"
)

const logFileMode = 0o600

// New builds the process logger. When cfg.File is set, output goes there and
// the returned closer releases it; otherwise output goes to fallback.
func New(cfg config.LogConfig, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if cfg.File == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		logger.SetOutput(fallback)
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)

	return logger, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
