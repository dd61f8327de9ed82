package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load("", noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":5001", cfg.Server.Addr)
	assert.Equal(t, BackendSQL, cfg.Storage.Backend)
	assert.Equal(t, "America/Toronto", cfg.Kitchen.Timezone)
	assert.Equal(t, 5*time.Second, cfg.Kitchen.PollInterval)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.RabbitMQ.Enabled())
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
storage:
  backend: FILE
  file_path: /var/lib/order-desk/orders.json
database:
  host: db
  user: kitchen
  database: orders
rabbitmq:
  host: mq
  user: guest
  password: guest
redis:
  addr: cache:6379
kitchen:
  timezone: Europe/Berlin
  poll_interval: 3s
log:
  level: debug
`)
	cfg, err := load(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/order-desk/orders.json", cfg.Storage.FilePath)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port, "unset keys keep their defaults")
	assert.Equal(t, "mq", cfg.RabbitMQ.Host)
	assert.Equal(t, "/", cfg.RabbitMQ.VHost)
	assert.True(t, cfg.RabbitMQ.Enabled())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Kitchen.PollInterval)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"DATABASE_URL": "postgres://u:p@host:5432/orders",
		"PORT":         "9000",
		"REDIS_ADDR":   "localhost:6379",
	}
	cfg, err := load("", func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@host:5432/orders", cfg.Database.URL)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unknown backend": "storage:\n  backend: mongo\n",
		"bad timezone":    "kitchen:\n  timezone: Mars/Olympus\n",
		"zero poll":       "kitchen:\n  poll_interval: 0s\n",
		"empty file path": "storage:\n  backend: file\n  file_path: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(writeConfig(t, body), noEnv)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "absent.yaml"), noEnv)
	assert.Error(t, err)
}
