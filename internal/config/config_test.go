package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, "debug", cfg.GinMode)
	require.False(t, cfg.SeedDemoData)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "TaskifyAPI", cfg.JWT.Issuer)
	require.Equal(t, "TaskifyClient", cfg.JWT.Audience)
	require.Equal(t, 60, cfg.JWT.ExpirationMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_DSN", "taskify:taskify@tcp(localhost:3306)/taskify?parseTime=true")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.HTTPPort)
	require.True(t, cfg.SeedDemoData)
	require.Equal(t, "mysql", cfg.Database.Driver)
	require.Equal(t, "taskify:taskify@tcp(localhost:3306)/taskify?parseTime=true", cfg.Database.DSN)
	require.Equal(t, "override-secret", cfg.JWT.Secret)
	require.Equal(t, 15, cfg.JWT.ExpirationMinutes)
}
