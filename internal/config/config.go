package config

import (
	"net"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Host           string `envconfig:"HOST" default:""`
	Port           int    `envconfig:"PORT" default:"8050"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	Version        string `envconfig:"VERSION" default:"dev"`
	Debug          bool   `envconfig:"DEBUG" default:"false"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MCPEnabled     bool   `envconfig:"MCP_ENABLED" default:"true"`
	MCPPath        string `envconfig:"MCP_PATH" default:"/mcp"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr returns the listen address built from Host and Port.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// EffectiveLogLevel returns the configured level, forced to debug when Debug is set.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}
