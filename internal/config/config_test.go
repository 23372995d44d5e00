package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 9, cfg.Import.SymbolThreshold)
	assert.Equal(t, "out", cfg.Import.OutputDir)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
import:
  symbol_threshold: 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 12, cfg.Import.SymbolThreshold)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "out", cfg.Import.OutputDir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: text
`)
	t.Setenv("TRADEIMPORT_LOGGING_FORMAT", "json")
	t.Setenv("TRADEIMPORT_IMPORT_OUTPUT_DIR", "/tmp/exports")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/exports", cfg.Import.OutputDir)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad logging format", content: "logging:\n  format: xml\n"},
		{name: "negative symbol threshold", content: "import:\n  symbol_threshold: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfigFile(t, "logging: [not a map\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}
