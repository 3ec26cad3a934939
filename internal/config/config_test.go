package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carline/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiry)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 500, cfg.AI.MaxTokens)
	assert.False(t, cfg.AI.Configured())
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CARLINE_SERVER_PORT", ":9090")
	t.Setenv("CARLINE_DB_HOST", "db.internal")
	t.Setenv("CARLINE_JWT_SECRET", "super-secret")
	t.Setenv("CARLINE_AI_API_KEY", "sk-test")
	t.Setenv("CARLINE_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.True(t, cfg.AI.Configured())
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CARLINE_SERVER_PORT", ":8088")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.Server.Port)
}

func TestDSN(t *testing.T) {
	d := config.DBConfig{
		Host: "localhost", Port: 5432, User: "carline",
		Password: "pw", Name: "carline_db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://carline:pw@localhost:5432/carline_db?sslmode=disable", d.DSN())
}
