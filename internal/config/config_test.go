package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

const minimalConfig = `
graph:
  tenant_id: tenant-1
  client_id: client-1
  client_secret: secret-1
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/m365_costs.db", cfg.Database.Path)
	assert.Equal(t, 999, cfg.Graph.PageSize)
	assert.Equal(t, "https://graph.microsoft.com/v1.0", cfg.Graph.BaseURL)
	assert.Equal(t, 5, cfg.Retry.MaxRetries)
	assert.Equal(t, time.Second, cfg.Retry.BaseDelay)
	assert.Equal(t, 2.0, cfg.Retry.Multiplier)
	assert.Equal(t, 2*time.Minute, cfg.Retry.MaxDelay)
	assert.Equal(t, 100, cfg.Collection.AssignmentBatchSize)
	assert.False(t, cfg.Collection.DisableAutoResume)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CLIENT_SECRET", "from-env")

	cfg, err := Parse([]byte(`
graph:
  tenant_id: tenant-1
  client_id: client-1
  client_secret: ${TEST_CLIENT_SECRET}
  page_size: 100
retry:
  max_retries: 3
  max_delay: 30s
collection:
  interval: 1h
`))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Graph.ClientSecret)
	assert.Equal(t, 100, cfg.Graph.PageSize)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Retry.MaxDelay)
	assert.Equal(t, time.Hour, cfg.Collection.Interval)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing tenant",
			yaml: "graph:\n  client_id: c\n  client_secret: s\n",
		},
		{
			name: "page size above graph limit",
			yaml: minimalConfig + "  page_size: 1000\n",
		},
		{
			name: "unknown driver",
			yaml: minimalConfig + "database:\n  driver: mysql\n",
		},
		{
			name: "postgres without host",
			yaml: minimalConfig + "database:\n  driver: postgres\n  dbname: m365\n",
		},
		{
			name: "bad log level",
			yaml: minimalConfig + "log_level: verbose\n",
		},
		{
			name: "malformed yaml",
			yaml: "graph: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_ClientSecretFromKeyring(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(DefaultKeyringService, "client-1", "from-keyring"))

	cfg, err := Parse([]byte(`
graph:
  tenant_id: tenant-1
  client_id: client-1
`))
	require.NoError(t, err)
	assert.Equal(t, "from-keyring", cfg.Graph.ClientSecret)
}

func TestParse_MissingSecretEverywhere(t *testing.T) {
	keyring.MockInit()

	_, err := Parse([]byte(`
graph:
  tenant_id: tenant-1
  client_id: client-2
`))
	assert.Error(t, err)
}

func TestStoreClientSecret(t *testing.T) {
	keyring.MockInit()

	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.StoreClientSecret("rotated"))

	secret, err := keyring.Get(DefaultKeyringService, "client-1")
	require.NoError(t, err)
	assert.Equal(t, "rotated", secret)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", cfg.Graph.TenantID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Path: "/tmp/c.db"}
	assert.Equal(t, "file:/tmp/c.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqlite.DSN())
	assert.Equal(t, "/tmp/c.db", sqlite.RedactedDSN())

	pg := DatabaseConfig{
		Driver: "postgres", Host: "db", Port: 5432, User: "app",
		Password: "pw", DBName: "m365", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=m365 sslmode=disable", pg.DSN())
	assert.Equal(t, "postgres://app@db:5432/m365", pg.RedactedDSN())
}
