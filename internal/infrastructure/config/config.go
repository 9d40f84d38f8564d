package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported MCP transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all configuration for the SAOS MCP server
type Config struct {
	// MCP transport - stdio for host-spawned processes, http for the streamable endpoint
	Transport   string `env:"SAOS_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPPort    string `env:"SAOS_MCP_HTTP_PORT" envDefault:"8092"`
	LogLevel    string `env:"SAOS_MCP_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"SAOS_MCP_LOG_FORMAT" envDefault:"json"` // json or console
	Environment string `env:"SAOS_MCP_ENVIRONMENT" envDefault:"development"`

	// SAOS API
	APIBaseURL  string `env:"SAOS_API_BASE_URL" envDefault:"https://www.saos.org.pl/api"`
	UserAgent   string `env:"SAOS_USER_AGENT" envDefault:"saos-mcp-server/1.0"`
	HTTPTimeout int    `env:"SAOS_HTTP_TIMEOUT" envDefault:"30"` // seconds

	// Tracing
	TracingEnabled bool   `env:"SAOS_MCP_TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(os.Getenv("SAOS_MCP_LOG_LEVEL")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_LEVEL")); global != "" {
			cfg.LogLevel = global
		}
	}
	if strings.TrimSpace(os.Getenv("SAOS_MCP_LOG_FORMAT")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_FORMAT")); global != "" {
			cfg.LogFormat = global
		}
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	switch cfg.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return nil, fmt.Errorf("SAOS_MCP_TRANSPORT must be %q or %q, got %q", TransportStdio, TransportHTTP, cfg.Transport)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("SAOS_HTTP_TIMEOUT must be positive, got %d", cfg.HTTPTimeout)
	}
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, fmt.Errorf("SAOS_API_BASE_URL is required")
	}
	return cfg, nil
}

// Timeout returns the remote request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
