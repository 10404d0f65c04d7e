package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Logger.Level)
	assert.Equal(t, "127.0.0.1", config.Inference.Host)
	assert.Equal(t, 1337, config.Inference.Port)
	assert.Equal(t, 4, config.Inference.Parallelism)
	assert.Zero(t, config.Inference.Timeout, "no deadline unless configured")
	assert.True(t, config.Inference.SendCosts)
	assert.Equal(t, 32768, config.Inference.BufferSize)
	assert.Equal(t, 100, config.Learning.Window)
	assert.Equal(t, 8983, config.Solr.Port)
	assert.Equal(t, 8, config.Solr.Count)
	assert.Empty(t, config.Status.Address)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
inference:
  host: nlp.example.org
  port: 4000
  parallelism: 16
  timeout: 30s
  send_costs: false
model:
  input: in.model
  output: out.model
dataset:
  file: results.jsonl
status:
  address: ":8080"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, "nlp.example.org", config.Inference.Host)
	assert.Equal(t, 4000, config.Inference.Port)
	assert.Equal(t, 16, config.Inference.Parallelism)
	assert.Equal(t, 30*time.Second, config.Inference.Timeout)
	assert.False(t, config.Inference.SendCosts)
	assert.Equal(t, "in.model", config.Model.Input)
	assert.Equal(t, "out.model", config.Model.Output)
	assert.Equal(t, "results.jsonl", config.Dataset.File)
	assert.Equal(t, 100, config.Dataset.Size)
	assert.Equal(t, 20, config.Dataset.Amount)
	assert.Equal(t, ":8080", config.Status.Address)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("NATURALLI_INFERENCE_PORT", "7000")
	t.Setenv("NATURALLI_LOGGER_LEVEL", "warn")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7000, config.Inference.Port)
	assert.Equal(t, "warn", config.Logger.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"log level", "logger:\n  level: loud\n"},
		{"port", "inference:\n  port: 70000\n"},
		{"parallelism", "inference:\n  parallelism: 0\n"},
		{"timeout", "inference:\n  timeout: -1s\n"},
		{"window", "learning:\n  window: -3\n"},
		{"solr count", "solr:\n  count: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoggerConfig_Validate(t *testing.T) {
	assert.NoError(t, (&LoggerConfig{Level: "WARNING"}).Validate())
	assert.Error(t, (&LoggerConfig{}).Validate())
}
