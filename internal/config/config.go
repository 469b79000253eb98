package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
// Note: This is a stateless configuration - the bridge keeps nothing between
// tool invocations; everything here comes from the environment at startup.
type Config struct {
	// Environment
	Environment string

	// SuperCollider server (scsynth) OSC endpoint
	SCHost string
	SCPort int

	// HTTP mode (MCP over streamable HTTP instead of stdio)
	Port string

	// Observability
	SentryDSN string // Sentry DSN for error tracking
}

// Default scsynth port.
const defaultSCPort = 57110

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		SCHost:      getEnv("SC_HOST", "127.0.0.1"),
		SCPort:      getEnvInt("SC_PORT", defaultSCPort),
		Port:        getEnv("PORT", "8080"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
	}
}

// SCAddr returns the scsynth endpoint as host:port.
func (c *Config) SCAddr() string {
	return c.SCHost + ":" + strconv.Itoa(c.SCPort)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
