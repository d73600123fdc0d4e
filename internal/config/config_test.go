package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"todoList/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad_Defaults проверяет значения по умолчанию без файла
func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 100, cfg.RateLimit.RPM)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Sweeper.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Sweeper.Interval)
	assert.Empty(t, cfg.Seed.File)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

// TestLoad_File проверяет чтение yaml файла
func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  request_timeout: 5s
logging:
  development: true
rate_limit:
  rpm: 0
sweeper:
  enabled: true
  interval: 1m
seed:
  file: tasks.yml
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Logging.Development)
	assert.Zero(t, cfg.RateLimit.RPM)
	assert.True(t, cfg.Sweeper.Enabled)
	assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, "tasks.yml", cfg.Seed.File)
}

// TestLoad_Env проверяет, что переменные окружения важнее файла
func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("TODO_SERVER_PORT", "7070")
	t.Setenv("TODO_SWEEPER_ENABLED", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Sweeper.Enabled)
}

// TestLoad_Errors тестирует ошибки загрузки
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid port", content: "server:\n  port: 70000\n"},
		{name: "negative rate limit", content: "rate_limit:\n  rpm: -1\n"},
		{name: "zero sweeper interval", content: "sweeper:\n  interval: 0s\n"},
		{name: "broken yaml", content: "server: [port\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
		assert.Error(t, err)
	})
}
