package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig database settings
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
	Path     string // SQLite file
	Seed     bool   // populate demo rows on first run
}

// Load reads configuration from the environment, and from .env when present
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read .env: %w", err)
	}

	env := getEnv("APP_ENV", "development")

	AppConfig = &Config{
		Environment: env,
		HTTP: HTTPConfig{
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "volley_training"),
			SSLMode:  getSSLMode(env),
			Path:     getEnv("DB_PATH", "volley_training.db"),
			Seed:     getEnvAsBool("DB_SEED", env != "production"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return validate()
}

// validate checks required settings
func validate() error {
	var err error
	db := AppConfig.Database

	switch db.Driver {
	case DriverPostgres:
		if db.Username == "" {
			err = multierr.Append(err, errors.New("DB_USER is required"))
		}
		if db.Password == "" && AppConfig.IsProduction() {
			err = multierr.Append(err, errors.New("DB_PASSWORD is required in production"))
		}
	case DriverSQLite:
		if db.Path == "" {
			err = multierr.Append(err, errors.New("DB_PATH is required"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("DB_DRIVER %q is not supported", db.Driver))
	}

	if _, perr := strconv.Atoi(AppConfig.HTTP.Port); perr != nil {
		err = multierr.Append(err, fmt.Errorf("HTTP_PORT %q is not a number", AppConfig.HTTP.Port))
	}

	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// getSSLMode production always talks TLS to postgres
func getSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
