package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/crewops/crewops-backend-go/internal/pkg/timeutil"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Timesheet TimesheetConfig
	RoleCache RoleCacheConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// TimesheetConfig holds the aggregation engine's policy knobs.
type TimesheetConfig struct {
	// ClockPolicy decides what to do with a clock-out before clock-in:
	// "reject" fails the entry, "cross_midnight" treats it as an overnight
	// shift.
	ClockPolicy timeutil.ClockPolicy
}

// RoleCacheConfig holds TTL settings for the worker-role lookup cache.
type RoleCacheConfig struct {
	TTL time.Duration
}

func Load() (*Config, error) {
	// Ignore a missing .env; plain environment variables are fine in
	// containerized deployments.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "crewops"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	// Timesheet policy
	clockPolicy := strings.ToLower(getEnv("TIMESHEET_CLOCK_POLICY", string(timeutil.ClockRejectNegative)))
	switch timeutil.ClockPolicy(clockPolicy) {
	case timeutil.ClockRejectNegative, timeutil.ClockCrossMidnight:
		config.Timesheet.ClockPolicy = timeutil.ClockPolicy(clockPolicy)
	default:
		return nil, fmt.Errorf("invalid TIMESHEET_CLOCK_POLICY: %q", clockPolicy)
	}

	// Role cache
	roleCacheTTL, err := time.ParseDuration(getEnv("ROLE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROLE_CACHE_TTL: %w", err)
	}
	config.RoleCache = RoleCacheConfig{TTL: roleCacheTTL}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
