package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SC_HOST", "")
	t.Setenv("SC_PORT", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "127.0.0.1", cfg.SCHost)
	assert.Equal(t, 57110, cfg.SCPort)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "127.0.0.1:57110", cfg.SCAddr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SC_HOST", "10.0.0.5")
	t.Setenv("SC_PORT", "57120")

	cfg := Load()
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "10.0.0.5:57120", cfg.SCAddr())
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("SC_PORT", "not-a-port")

	cfg := Load()
	assert.Equal(t, 57110, cfg.SCPort)
}
