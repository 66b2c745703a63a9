package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/shopeasy-cli/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFallback(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "debug", Format: "json"}, &out)
	require.NoError(t, err)
	defer closer.Close()

	logger.WithField("product_id", 1).Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, float64(1), entry["product_id"])
}

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	t.Parallel()

	logger, closer, err := New(config.LogConfig{Level: "chatty", Format: "text"}, nil)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewAppendsToLogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "shopeasy.log")
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "text", File: path}, nil)
	require.NoError(t, err)

	logger.Error("Error fetching products")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Error fetching products")
	assert.Contains(t, string(data), "level=error")
}
