// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Secret hides sensitive values from logs and fmt output.
type Secret string

func (s Secret) String() string   { return "[REDACTED]" }
func (s Secret) GoString() string { return "[REDACTED]" }
func (s Secret) Value() string    { return string(s) }

type DatabaseConfig struct {
	Host       string
	User       string
	Password   Secret
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

// DSN returns the key=value connection string understood by the postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password.Value(), d.Name, d.Port, d.SSLMode,
	)
}

type Config struct {
	Env      string
	Port     string
	Database DatabaseConfig

	RedisAddr string
	CacheTTL  time.Duration

	KafkaBroker        string
	OutboxPollInterval time.Duration

	JWTSecret      Secret
	RBACModelPath  string
	RBACPolicyPath string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from environment variables. Call godotenv.Load
// before Load when a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Env:  envOrDefault("APP_ENV", "development"),
		Port: envOrDefault("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     envOrDefault("DB_HOST", "localhost"),
			User:     envOrDefault("DB_USER", "postgres"),
			Password: Secret(os.Getenv("DB_PASSWORD")),
			Name:     envOrDefault("DB_NAME", "hris"),
			Port:     envOrDefault("DB_PORT", "5432"),
			SSLMode:  envOrDefault("DB_SSLMODE", "disable"),
		},
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      Secret(os.Getenv("JWT_SECRET")),
		RBACModelPath:  envOrDefault("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
		RBACPolicyPath: envOrDefault("RBAC_POLICY_PATH", "internal/rbac/infra/policy.csv"),
	}

	var err error
	if cfg.Database.MaxRetries, err = intFromEnv("DB_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationFromEnv("CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.OutboxPollInterval, err = durationFromEnv("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = durationFromEnv("HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = durationFromEnv("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = durationFromEnv("HTTP_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if c.Database.Host == "" || c.Database.Name == "" {
		return fmt.Errorf("DB_HOST and DB_NAME are required")
	}
	if c.Database.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}

	if c.IsProduction() && c.JWTSecret.Value() == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	if c.OutboxPollInterval <= 0 {
		return fmt.Errorf("OUTBOX_POLL_INTERVAL must be positive")
	}

	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 3s): %w", key, err)
	}
	return d, nil
}
