package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg := InitConfig("")

	assert.Equal(t, "ledger", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Webhook.Timeout)
	assert.Equal(t, 2, cfg.Webhook.MaxRetries)
	assert.True(t, cfg.Redis.Enabled)
	assert.False(t, cfg.NewRelic.Enabled)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/ledger")
	t.Setenv("WEBHOOK_TIMEOUT", "3")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("NATS_ENABLED", "false")

	cfg := InitConfig("")

	assert.Equal(t, "https://hooks.example.com/ledger", cfg.Webhook.URL)
	assert.Equal(t, 3, cfg.Webhook.Timeout)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.False(t, cfg.NATS.Enabled)
}

func TestInitConfig_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg := InitConfig("")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
}

func TestInitConfig_LocalEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.env")
	content := "WEBHOOK_URL=http://localhost:9000/hook\nSERVER_PORT=9090\nJWT_SECRET=file-secret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := InitConfig(path)

	assert.Equal(t, "http://localhost:9000/hook", cfg.Webhook.URL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}
