package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")

	cfg := Load()

	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("TOKEN_KEY", "super-secret-signing-key")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "super-secret-signing-key", cfg.Auth.TokenKey)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:         "db.internal",
			Port:         "3307",
			Username:     "svc",
			Password:     "pw",
			DatabaseName: "messenger",
		},
	}

	assert.Equal(t,
		"svc:pw@tcp(db.internal:3307)/messenger?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}

func TestDSN_FallsBackToLocalhost(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Username:     "svc",
			Password:     "pw",
			DatabaseName: "messenger",
		},
	}

	assert.Equal(t,
		"svc:pw@tcp(localhost:3306)/messenger?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())

	// building the DSN must not write the fallbacks back into the config
	assert.Empty(t, cfg.Database.Host)
	assert.Empty(t, cfg.Database.Port)
}
