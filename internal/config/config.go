package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Port            string
	Host            string
	ShutdownTimeout time.Duration

	// Database
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:            GetEnv("PORT", "8000"),
		Host:            GetEnv("HOST", "0.0.0.0"),
		ShutdownTimeout: GetEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		DatabaseURL:     GetEnv("DATABASE_URL", ""),
		MaxOpenConns:    GetEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    GetEnvInt("DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: GetEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		AutoMigrate:     GetEnvBool("AUTO_MIGRATE", true),
		LogLevel:        GetEnv("LOG_LEVEL", "INFO"),
		LogFormat:       GetEnv("LOG_FORMAT", "json"),
	}
}

// GetEnv returns the value of an environment variable or a default value.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the integer value of an environment variable or a default value.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// GetEnvBool returns the boolean value of an environment variable or a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// GetEnvDuration parses values like "30s" or "1h". Unparseable values fall back to the default.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
