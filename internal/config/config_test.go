package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, DefaultFeedURL, cfg.App.FeedURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "config.json", `{"server":{"address":":9000"},"logger":{"level":"debug"},"app":{"feed_url":"https://example.com/rss"}}`},
		{"toml", "config.toml", "[server]\naddress = \":9000\"\n[logger]\nlevel = \"debug\"\n[app]\nfeed_url = \"https://example.com/rss\"\n"},
		{"yaml", "config.yaml", "server:\n  address: \":9000\"\nlogger:\n  level: debug\napp:\n  feed_url: https://example.com/rss\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))

			require.NoError(t, err)
			assert.Equal(t, ":9000", cfg.Server.Address)
			assert.Equal(t, "debug", cfg.Logger.Level)
			assert.Equal(t, "https://example.com/rss", cfg.App.FeedURL)
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.json", `{"logger":{"level":"warn"}}`))

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, DefaultFeedURL, cfg.App.FeedURL)
	assert.Equal(t, ":8080", cfg.Server.Address)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvFeedURL, "https://override.example.com/rss")
	t.Setenv(EnvAddress, ":7000")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(writeFile(t, "config.json", `{"app":{"feed_url":"https://example.com/rss"}}`))

	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com/rss", cfg.App.FeedURL)
	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, "error", cfg.Logger.Level)
}

func TestLoad_LogLevelIsCaseInsensitive(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.NoError(t, cfg.Validate())

	cfg = New()
	cfg.Logger.Level = "Warn"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeFile(t, "config.json", `{not json`))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.App.FeedURL = "not a url"
	assert.ErrorContains(t, cfg.Validate(), "app.feed_url")

	cfg = New()
	cfg.Logger.Level = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "logger.level")

	cfg = New()
	cfg.Server.Address = ""
	assert.ErrorContains(t, cfg.Validate(), "server.address")
}
