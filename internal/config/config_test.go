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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "gateway-test"

[platform_api]
url = "https://platform.example.com/api"
token = "secret"
timeout = 5

[realtime]
enabled = true
url = "wss://realtime.example.com"
app_key = "key-1"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "gateway-test", cfg.Metrics.ServiceName)
	assert.Equal(t, "https://platform.example.com/api", cfg.PlatformAPI.URL)
	assert.Equal(t, 5, cfg.PlatformAPI.Timeout)
	assert.Equal(t, "wss://realtime.example.com", cfg.Realtime.URL)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[platform_api]
url = "https://platform.example.com/api"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.PlatformAPI.Timeout)
	assert.Equal(t, "private-conversation", cfg.Realtime.ChannelPrefix)
	assert.Equal(t, 30, cfg.Realtime.PingInterval)
}

func TestLoad_MissingPlatformURL(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RealtimeEnabledWithoutURL(t *testing.T) {
	path := writeConfig(t, `
[platform_api]
url = "https://platform.example.com/api"

[realtime]
enabled = true
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
