package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig  `envPrefix:"DB_"`
	JWT       JWTConfig       `envPrefix:"JWT_"`
	App       AppConfig       `envPrefix:"APP_"`
	Audit     AuditConfig     `envPrefix:"AUDIT_"`
	Slack     SlackConfig     `envPrefix:"SLACK_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
	LogLevel  string          `env:"LOG_LEVEL" envDefault:"info"`
}

type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"cmlabs-hris"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
	MaxConns int32  `env:"MAX_CONNS" envDefault:"25"`
	MinConns int32  `env:"MIN_CONNS" envDefault:"5"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"SECRET_KEY"`
	AccessExpiration string `env:"ACCESS_EXPIRATION_TIME" envDefault:"1h"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Name            string        `env:"NAME" envDefault:"hris-overtime"`
	Version         string        `env:"VERSION" envDefault:"v1.0.0"`
	Port            int           `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"`
	Timezone        string        `env:"TIMEZONE" envDefault:"UTC"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// AuditConfig tunes the background audit recorder
type AuditConfig struct {
	BatchSize     int           `env:"BATCH_SIZE" envDefault:"100"`
	FlushInterval time.Duration `env:"FLUSH_INTERVAL" envDefault:"5s"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"2"`
	QueueSize     int           `env:"QUEUE_SIZE" envDefault:"1000"`
}

type SlackConfig struct {
	BotToken       string `env:"BOT_TOKEN"`
	AuditChannelID string `env:"AUDIT_CHANNEL"`
}

// Enabled reports whether decisions should be posted to Slack.
func (s SlackConfig) Enabled() bool {
	return s.BotToken != "" && s.AuditChannelID != ""
}

type TelemetryConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"true"`
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"hris-overtime"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Debug("no .env file found, using process environment")
	}

	return Parse()
}

// Parse builds the configuration from the process environment only.
func Parse() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location returns the zone attendance clock-ins are interpreted in.
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}
