package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourorg/stocksnap/internal/validator"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Search  SearchConfig
	Share   ShareConfig
	Auth    AuthConfig
	Admin   AdminConfig
	Kafka   KafkaConfig
	Logging LoggingConfig
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port         string `validate:"required"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StorageConfig selects and configures the session key-value store
type StorageConfig struct {
	Driver string `validate:"oneof=memory file bolt redis"`
	Key    string `validate:"required"`
	File   FileStorageConfig
	Bolt   BoltStorageConfig
	Redis  RedisStorageConfig
}

// FileStorageConfig holds configuration for the JSON file store
type FileStorageConfig struct {
	Path string
}

// BoltStorageConfig holds configuration for the bbolt store
type BoltStorageConfig struct {
	Path    string
	Bucket  string
	Timeout time.Duration
}

// RedisStorageConfig holds Redis specific configuration
type RedisStorageConfig struct {
	URL      string
	Password string
	DB       int
	Prefix   string
}

// SearchConfig holds search behaviour configuration
type SearchConfig struct {
	Delay         time.Duration `validate:"gte=0"`
	DiscoverLimit int           `validate:"gte=1"`
}

// ShareConfig holds share action configuration
type ShareConfig struct {
	BaseURL    string        `validate:"required"`
	ResetDelay time.Duration `validate:"gte=0"`
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	JWTSecret     string        `validate:"required"`
	TokenDuration time.Duration `validate:"gt=0"`
}

// AdminConfig holds the bcrypt hash of the admin API key.
// An empty hash disables the admin routes.
type AdminConfig struct {
	KeyHash string
}

// KafkaConfig holds Kafka specific configuration
type KafkaConfig struct {
	Enabled    bool
	Brokers    []string
	Topic      string
	ClientID   string
	MaxRetries uint64
}

// LoggingConfig holds logging specific configuration
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// LoadConfig loads the configuration from file and environment variables.
// An empty path loads defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override, e.g. STOCKSNAP_STORAGE_DRIVER
	v.SetEnvPrefix("stocksnap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "120s")

	// Storage defaults
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.key", "stockanalyzer_user")
	v.SetDefault("storage.file.path", "data/session.json")
	v.SetDefault("storage.bolt.path", "data/session.db")
	v.SetDefault("storage.bolt.bucket", "session")
	v.SetDefault("storage.bolt.timeout", "1s")
	v.SetDefault("storage.redis.url", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "stocksnap:")

	// Search defaults
	v.SetDefault("search.delay", "300ms")
	v.SetDefault("search.discoverLimit", 10)

	// Share defaults
	v.SetDefault("share.baseURL", "http://localhost:8080")
	v.SetDefault("share.resetDelay", "3s")

	// Auth defaults
	v.SetDefault("auth.jwtSecret", "change-me")
	v.SetDefault("auth.tokenDuration", "24h")

	// Admin routes stay disabled without a key hash
	v.SetDefault("admin.keyHash", "")

	// Kafka defaults
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "session-events")
	v.SetDefault("kafka.clientID", "stocksnap")
	v.SetDefault("kafka.maxRetries", 3)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
