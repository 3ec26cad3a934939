package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	AI     AIConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// AIConfig holds settings for the receipt extraction service.
// An empty APIKey means receipt scanning is disabled, not a startup error.
type AIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Endpoint    string  `mapstructure:"endpoint"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// Configured reports whether the extraction service credential is present.
func (a *AIConfig) Configured() bool {
	return a.APIKey != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the CARLINE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CARLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "carline")
	v.SetDefault("db.password", "carline_secret")
	v.SetDefault("db.name", "carline_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "carline")

	// AI defaults
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.endpoint", "")
	v.SetDefault("ai.timeout_secs", 60)
	v.SetDefault("ai.max_tokens", 500)
	v.SetDefault("ai.temperature", 0.2)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8081,http://127.0.0.1:8081")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CARLINE_SERVER_PORT",
		"server.read_timeout":  "CARLINE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CARLINE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CARLINE_SERVER_ENVIRONMENT",
		"db.host":              "CARLINE_DB_HOST",
		"db.port":              "CARLINE_DB_PORT",
		"db.user":              "CARLINE_DB_USER",
		"db.password":          "CARLINE_DB_PASSWORD",
		"db.name":              "CARLINE_DB_NAME",
		"db.sslmode":           "CARLINE_DB_SSLMODE",
		"db.max_open":          "CARLINE_DB_MAX_OPEN",
		"db.max_idle":          "CARLINE_DB_MAX_IDLE",
		"jwt.secret":           "CARLINE_JWT_SECRET",
		"jwt.access_expiry":    "CARLINE_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "CARLINE_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "CARLINE_JWT_ISSUER",
		"ai.api_key":           "CARLINE_AI_API_KEY",
		"ai.model":             "CARLINE_AI_MODEL",
		"ai.endpoint":          "CARLINE_AI_ENDPOINT",
		"ai.timeout_secs":      "CARLINE_AI_TIMEOUT_SECS",
		"ai.max_tokens":        "CARLINE_AI_MAX_TOKENS",
		"ai.temperature":       "CARLINE_AI_TEMPERATURE",
		"log.level":            "CARLINE_LOG_LEVEL",
		"log.format":           "CARLINE_LOG_FORMAT",
		"cors.allowed_origins": "CARLINE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CARLINE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CARLINE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.AI = AIConfig{
		APIKey:      v.GetString("ai.api_key"),
		Model:       v.GetString("ai.model"),
		Endpoint:    v.GetString("ai.endpoint"),
		TimeoutSecs: v.GetInt("ai.timeout_secs"),
		MaxTokens:   v.GetInt("ai.max_tokens"),
		Temperature: v.GetFloat64("ai.temperature"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
