package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestConfigurationYAMLBinding(t *testing.T) {
	text := `
logs:
  level: Debug
  file: /dev/stdout
fetch:
  command: fetch-helper
  timeout_seconds: 10
`
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(text), &cfg))

	assert.Equal(t, "Debug", cfg.Logs.Level)
	assert.Equal(t, "/dev/stdout", cfg.Logs.File)
	assert.Equal(t, "fetch-helper", cfg.Fetch.Command)
	assert.Equal(t, 10, cfg.Fetch.TimeoutSeconds)
}

func TestConfigurationZeroValue(t *testing.T) {
	var cfg Configuration

	assert.Empty(t, cfg.Fetch.Command)
	assert.Zero(t, cfg.Fetch.TimeoutSeconds)
	assert.Empty(t, cfg.Logs.Level)
}
