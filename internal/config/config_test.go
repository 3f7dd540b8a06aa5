package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 12, cfg.Client.Grid.Columns)
	assert.Equal(t, 0, cfg.Client.Grid.Rows)
	assert.Equal(t, 4, cfg.Client.Sync.FanOut)
	assert.Equal(t, 10, cfg.Client.Sync.RecordTimeoutSeconds)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
client:
  server_url: "https://deck.example.com"
  grid:
    columns: 8
    rows: 6
  sync:
    fan_out: 2
server:
  listen_addr: ":9090"
  log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://deck.example.com", cfg.Client.ServerURL)
	assert.Equal(t, 8, cfg.Client.Grid.Columns)
	assert.Equal(t, 6, cfg.Client.Grid.Rows)
	assert.Equal(t, 2, cfg.Client.Sync.FanOut)
	// untouched fields keep defaults
	assert.Equal(t, 10, cfg.Client.Sync.RecordTimeoutSeconds)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "client: [not a mapping")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "zero columns",
			content: `
client:
  grid:
    columns: 0
`,
		},
		{
			name: "negative rows",
			content: `
client:
  grid:
    rows: -1
`,
		},
		{
			name: "zero fan out",
			content: `
client:
  sync:
    fan_out: 0
`,
		},
		{
			name: "zero record timeout",
			content: `
client:
  sync:
    record_timeout_seconds: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
