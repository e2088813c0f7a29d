package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server ServerConfig
	Tables TableConfig
	Audit  AuditConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"SERVER_PORT" default:"8080"`
}

// TableConfig holds the DynamoDB table names.
type TableConfig struct {
	Items       string `envconfig:"DYNAMODB_ITEMS_TABLE_NAME" default:"items"`
	Listings    string `envconfig:"DYNAMODB_LISTINGS_TABLE_NAME" default:"listings"`
	Trades      string `envconfig:"DYNAMODB_TRADES_TABLE_NAME" default:"trades"`
	Wallets     string `envconfig:"DYNAMODB_WALLETS_TABLE_NAME" default:"wallets"`
	Profiles    string `envconfig:"DYNAMODB_PROFILES_TABLE_NAME" default:"profiles"`
	Friendships string `envconfig:"DYNAMODB_FRIENDSHIPS_TABLE_NAME" default:"friendships"`
	Receipts    string `envconfig:"DYNAMODB_RECEIPTS_TABLE_NAME" default:"receipts"`
	Audit       string `envconfig:"DYNAMODB_AUDIT_TABLE_NAME" default:"audit"`
}

// AuditConfig holds the audit queue settings.
type AuditConfig struct {
	QueueURL string `envconfig:"AUDIT_SQS_QUEUE_URL"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
