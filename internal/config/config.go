package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all docsite configuration
type Config struct {
	// Server settings
	ServerAddress string `env:"DOCSITE_ADDRESS" envDefault:"0.0.0.0"`
	ServerPort    int    `env:"DOCSITE_PORT" envDefault:"3000"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Server timeouts
	ReadTimeout       time.Duration `env:"DOCSITE_READ_TIMEOUT" envDefault:"5s"`
	ReadHeaderTimeout time.Duration `env:"DOCSITE_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"DOCSITE_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"DOCSITE_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Export    ExportConfig
	Otel      OtelConfig
}

// RateLimitConfig bounds requests per client IP
type RateLimitConfig struct {
	// RequestsPerMinute of 0 disables limiting
	RequestsPerMinute int `env:"DOCSITE_RATE_LIMIT_RPM" envDefault:"600"`
}

// Enabled returns true when a positive limit is configured
func (r RateLimitConfig) Enabled() bool {
	return r.RequestsPerMinute > 0
}

// MetricsConfig controls the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `env:"DOCSITE_METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"DOCSITE_METRICS_PATH" envDefault:"/metrics"`
}

// ExportConfig controls the static site build
type ExportConfig struct {
	OutputDir string `env:"DOCSITE_OUT_DIR" envDefault:"build"`
	// Concurrency caps parallel file writes
	Concurrency int `env:"DOCSITE_EXPORT_CONCURRENCY" envDefault:"4"`
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerAddress, strconv.Itoa(c.ServerPort))
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("address", cfg.Addr()),
		slog.Bool("metrics", cfg.Metrics.Enabled),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
