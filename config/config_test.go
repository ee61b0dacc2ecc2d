package config

import (
	"testing"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SourceModeHTTP, cfg.TripSource.Mode)
	assert.Equal(t, "http://localhost:8000/api", cfg.TripAPI.BaseURL)
	assert.Equal(t, 10, cfg.TripAPI.TimeoutSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "tripboard:prefs:", cfg.Preferences.KeyPrefix)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_ENVIRONMENT", "production")
	t.Setenv("TRIP_API_BASE_URL", "https://trips.example.com/api")
	t.Setenv("TRIP_API_TIMEOUT_SECONDS", "3")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://trips.example.com/api", cfg.TripAPI.BaseURL)
	assert.Equal(t, 3, cfg.TripAPI.TimeoutSeconds)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_UnknownSourceMode(t *testing.T) {
	t.Setenv("TRIP_SOURCE_MODE", "ftp")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func validConfig() *Config {
	return &Config{
		Server:     ServerConfig{Port: "8080", AllowedOrigins: []string{"*"}},
		TripSource: TripSourceConfig{Mode: SourceModeHTTP},
		TripAPI:    TripAPIConfig{BaseURL: "http://localhost:8000/api", TimeoutSeconds: 10},
		Database:   DatabaseConfig{Host: "localhost", User: "postgres", Name: "tripboard"},
		RateLimit:  RateLimitConfig{RequestsPerMinute: 60},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid http", mutate: func(c *Config) {}},
		{name: "valid postgres", mutate: func(c *Config) { c.TripSource.Mode = SourceModePostgres }},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "server port is required"},
		{name: "bad origin", mutate: func(c *Config) { c.Server.AllowedOrigins = []string{"not a url"} }, wantErr: "invalid allowed origin"},
		{name: "missing base url", mutate: func(c *Config) { c.TripAPI.BaseURL = "" }, wantErr: "trip API base URL is required"},
		{name: "postgres without host", mutate: func(c *Config) {
			c.TripSource.Mode = SourceModePostgres
			c.Database.Host = ""
		}, wantErr: "database host is required"},
		{name: "zero timeout", mutate: func(c *Config) { c.TripAPI.TimeoutSeconds = 0 }, wantErr: "timeout must be positive"},
		{name: "redis without address", mutate: func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.Address = ""
		}, wantErr: "redis address is required"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, wantErr: "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_URL(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "trip user", Password: "p@ss", Name: "tripboard"}
	assert.Equal(t, "postgres://trip%20user:p%40ss@db:5432/tripboard?sslmode=disable", cfg.URL())
}
