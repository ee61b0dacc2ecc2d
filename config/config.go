// Package config handles loading and validation of tripboard configuration
// from environment variables (and an optional .env file).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/NomadCrew/tripboard/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// SourceMode selects where remote trips are read from.
type SourceMode string

const (
	SourceModeHTTP     SourceMode = "http"
	SourceModePostgres SourceMode = "postgres"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// TripAPIConfig points at the trip backend.
type TripAPIConfig struct {
	BaseURL        string `mapstructure:"BASE_URL" yaml:"base_url"`
	Token          string `mapstructure:"TOKEN" yaml:"token"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
}

// TripSourceConfig chooses the remote collaborator.
type TripSourceConfig struct {
	Mode SourceMode `mapstructure:"MODE" yaml:"mode"`
}

// DatabaseConfig holds PostgreSQL connection details. Only used when the
// trip source mode is postgres.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST" yaml:"host"`
	Port           int    `mapstructure:"PORT" yaml:"port"`
	User           string `mapstructure:"USER" yaml:"user"`
	Password       string `mapstructure:"PASSWORD" yaml:"password"`
	Name           string `mapstructure:"NAME" yaml:"name"`
	SSLMode        string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS" yaml:"max_connections"`
	RunMigrations  bool   `mapstructure:"RUN_MIGRATIONS" yaml:"run_migrations"`
}

// URL returns a postgres:// connection URL suitable for pgxpool and golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// RedisConfig holds Redis connection details. Redis backs saved view
// preferences and rate limiting; without it both fall back to memory / off.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"ENABLED" yaml:"enabled"`
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
}

// PreferencesConfig configures saved view preferences.
type PreferencesConfig struct {
	KeyPrefix string `mapstructure:"KEY_PREFIX" yaml:"key_prefix"`
}

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"REQUESTS_PER_MINUTE" yaml:"requests_per_minute"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server      ServerConfig      `mapstructure:"SERVER" yaml:"server"`
	TripAPI     TripAPIConfig     `mapstructure:"TRIP_API" yaml:"trip_api"`
	TripSource  TripSourceConfig  `mapstructure:"TRIP_SOURCE" yaml:"trip_source"`
	Database    DatabaseConfig    `mapstructure:"DATABASE" yaml:"database"`
	Redis       RedisConfig       `mapstructure:"REDIS" yaml:"redis"`
	Preferences PreferencesConfig `mapstructure:"PREFERENCES" yaml:"preferences"`
	RateLimit   RateLimitConfig   `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("TRIP_SOURCE.MODE", SourceModeHTTP)
	v.SetDefault("TRIP_API.BASE_URL", "http://localhost:8000/api")
	v.SetDefault("TRIP_API.TOKEN", "")
	v.SetDefault("TRIP_API.TIMEOUT_SECONDS", 10)
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "tripboard")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNECTIONS", 5)
	v.SetDefault("DATABASE.RUN_MIGRATIONS", false)
	v.SetDefault("REDIS.ENABLED", false)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("PREFERENCES.KEY_PREFIX", "tripboard:prefs:")
	v.SetDefault("RATE_LIMIT.REQUESTS_PER_MINUTE", 120)
}

var envBindings = [][2]string{
	// Server config
	{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
	{"SERVER.PORT", "PORT"},
	{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
	{"SERVER.VERSION", "VERSION"},
	// Trip source
	{"TRIP_SOURCE.MODE", "TRIP_SOURCE_MODE"},
	{"TRIP_API.BASE_URL", "TRIP_API_BASE_URL"},
	{"TRIP_API.TOKEN", "TRIP_API_TOKEN"},
	{"TRIP_API.TIMEOUT_SECONDS", "TRIP_API_TIMEOUT_SECONDS"},
	// Database config
	{"DATABASE.HOST", "DB_HOST"},
	{"DATABASE.PORT", "DB_PORT"},
	{"DATABASE.USER", "DB_USER"},
	{"DATABASE.PASSWORD", "DB_PASSWORD"},
	{"DATABASE.NAME", "DB_NAME"},
	{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
	{"DATABASE.MAX_CONNECTIONS", "DB_MAX_CONNECTIONS"},
	{"DATABASE.RUN_MIGRATIONS", "DB_RUN_MIGRATIONS"},
	// Redis config
	{"REDIS.ENABLED", "REDIS_ENABLED"},
	{"REDIS.ADDRESS", "REDIS_ADDRESS"},
	{"REDIS.PASSWORD", "REDIS_PASSWORD"},
	{"REDIS.DB", "REDIS_DB"},
	{"REDIS.USE_TLS", "REDIS_USE_TLS"},
	// Preferences and rate limiting
	{"PREFERENCES.KEY_PREFIX", "PREFERENCES_KEY_PREFIX"},
	{"RATE_LIMIT.REQUESTS_PER_MINUTE", "RATE_LIMIT_REQUESTS_PER_MINUTE"},
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it. A .env file in the working
// directory is loaded first when present; real environment variables win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	log := logger.GetLogger()

	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	// ALLOWED_ORIGINS arrives as one comma separated string from the environment.
	cfg.Server.AllowedOrigins = splitOrigins(cfg.Server.AllowedOrigins)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"trip_source", cfg.TripSource.Mode,
		"trip_api", cfg.TripAPI.BaseURL,
		"trip_api_token", logger.MaskSensitiveString(cfg.TripAPI.Token, 3, 3),
		"redis_enabled", cfg.Redis.Enabled,
	)
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	switch cfg.TripSource.Mode {
	case SourceModeHTTP:
		if cfg.TripAPI.BaseURL == "" {
			return fmt.Errorf("trip API base URL is required")
		}
		if _, err := url.ParseRequestURI(cfg.TripAPI.BaseURL); err != nil {
			return fmt.Errorf("invalid trip API base URL: %w", err)
		}
	case SourceModePostgres:
		if cfg.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if cfg.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if cfg.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
		if cfg.Database.Password == "" {
			logger.GetLogger().Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
		}
	default:
		return fmt.Errorf("unknown trip source mode %q", cfg.TripSource.Mode)
	}

	if cfg.TripAPI.TimeoutSeconds <= 0 {
		return fmt.Errorf("trip API timeout must be positive")
	}
	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate limit requests per minute must be positive")
	}
	return nil
}

func splitOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
