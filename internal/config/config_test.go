package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "beach"
password = "from-file"
dbname = "beachclub"

[logs]
level = "debug"

[metrics]
enabled = true

[business]
timezone = "Europe/Istanbul"

[gateway]
url = "http://gateway.local"
webhook_secret = "whsec-file"

[auth]
jwt_secret = "jwt-file"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 8, cfg.Business.OpeningHour)
	assert.Equal(t, 22, cfg.Business.ClosingHour)
	assert.Equal(t, time.Hour, cfg.Business.SlotDuration())
	assert.Equal(t, "TRY", cfg.Business.Currency)
	assert.Equal(t, 10, cfg.Gateway.Timeout)
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5433 user=beach password=from-file dbname=beachclub")
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("GATEWAY_WEBHOOK_SECRET", "whsec-env")
	t.Setenv("AUTH_JWT_SECRET", "jwt-env")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "whsec-env", cfg.Gateway.WebhookSecret)
	assert.Equal(t, "jwt-env", cfg.Auth.JWTSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaults()
		cfg.Database.User = "beach"
		cfg.Database.DBName = "beachclub"
		cfg.Gateway.URL = "http://gateway.local"
		cfg.Gateway.WebhookSecret = "whsec"
		cfg.Auth.JWTSecret = "jwt"
		return cfg
	}

	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no db name", func(c *Config) { c.Database.DBName = "" }},
		{"unknown timezone", func(c *Config) { c.Business.Timezone = "Mars/Olympus" }},
		{"inverted hours", func(c *Config) { c.Business.OpeningHour = 22; c.Business.ClosingHour = 8 }},
		{"uneven slots", func(c *Config) { c.Business.SlotMinutes = 50 }},
		{"bad currency", func(c *Config) { c.Business.Currency = "LIRA" }},
		{"no gateway url", func(c *Config) { c.Gateway.URL = "" }},
		{"no webhook secret", func(c *Config) { c.Gateway.WebhookSecret = "" }},
		{"no jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"metrics without path", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
