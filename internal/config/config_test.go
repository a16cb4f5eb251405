package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envDBPassword, "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultServerPort, cfg.Server.Port)
	assert.Equal(t, defaultServerReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, defaultDBHost, cfg.Database.Host)
	assert.Equal(t, defaultDBPort, cfg.Database.Port)
	assert.Equal(t, defaultDBName, cfg.Database.Database)
	assert.Equal(t, defaultDBMaxConns, cfg.Database.MaxConns)
	assert.Equal(t, defaultRatePerSecond, cfg.Limits.RatePerSecond)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(envDBPassword, "secret")
	t.Setenv(envPort, "9090")
	t.Setenv(envDBName, "directory")
	t.Setenv(envServerShutdownTimeout, "30s")
	t.Setenv(envDBMaxConns, "10")
	t.Setenv(envDBMinConns, "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "directory", cfg.Database.Database)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 2, cfg.Database.MinConns)
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv(envDBPassword, "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MinConnsOverMax(t *testing.T) {
	t.Setenv(envDBPassword, "secret")
	t.Setenv(envDBMaxConns, "2")
	t.Setenv(envDBMinConns, "5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv(envDBPassword, "secret")
	t.Setenv(envDBPort, "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultDBPort, cfg.Database.Port)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Database: "clients",
		User:     "svc",
		Password: "pw",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 dbname=clients user=svc password=pw sslmode=require",
		cfg.DSN(),
	)
}
