package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "stockanalyzer_user", cfg.Storage.Key)
	assert.Equal(t, "data/session.json", cfg.Storage.File.Path)
	assert.Equal(t, time.Second, cfg.Storage.Bolt.Timeout)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Delay)
	assert.Equal(t, 10, cfg.Search.DiscoverLimit)
	assert.Equal(t, 3*time.Second, cfg.Share.ResetDelay)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, uint64(3), cfg.Kafka.MaxRetries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Admin.KeyHash)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
storage:
  driver: bolt
  bolt:
    path: /tmp/test.db
search:
  delay: 0s
kafka:
  enabled: true
  brokers:
    - kafka:9092
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.Bolt.Path)
	assert.Equal(t, "session", cfg.Storage.Bolt.Bucket)
	assert.Zero(t, cfg.Search.Delay)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STOCKSNAP_STORAGE_DRIVER", "memory")
	t.Setenv("STOCKSNAP_SERVER_PORT", "7070")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfigEnvOverridesKeysWithoutFileValue(t *testing.T) {
	t.Setenv("STOCKSNAP_ADMIN_KEYHASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("STOCKSNAP_STORAGE_REDIS_PASSWORD", "hunter2")
	t.Setenv("STOCKSNAP_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.Admin.KeyHash)
	assert.Equal(t, "hunter2", cfg.Storage.Redis.Password)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown storage driver", env: map[string]string{"STOCKSNAP_STORAGE_DRIVER": "sqlite"}},
		{name: "unknown log level", env: map[string]string{"STOCKSNAP_LOGGING_LEVEL": "verbose"}},
		{name: "zero token duration", env: map[string]string{"STOCKSNAP_AUTH_TOKENDURATION": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
