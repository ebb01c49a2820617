package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config is read once at startup. Admin credentials and the default employee
// password used to live as literals in the source; they are injected here so
// deployments (and tests) supply their own secrets.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr string

	JWTSecret               string
	TokenTTL                time.Duration
	AdminUsername           string
	AdminPassword           string
	DefaultEmployeePassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "salsure"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		JWTSecret:               os.Getenv("JWT_SECRET"),
		TokenTTL:                getEnvDuration("TOKEN_TTL_MINUTES", 60) * time.Minute,
		AdminUsername:           os.Getenv("ADMIN_USERNAME"),
		AdminPassword:           os.Getenv("ADMIN_PASSWORD"),
		DefaultEmployeePassword: os.Getenv("DEFAULT_EMPLOYEE_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	if cfg.DefaultEmployeePassword == "" {
		return nil, errors.New("DEFAULT_EMPLOYEE_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
