package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/azajakins/lfl-stats/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config stores runtime configuration for the stats tooling.
type Config struct {
	AppEnv      string
	ServiceName string
	// DBURL selects postgres storage; empty means in-memory.
	DBURL            string
	IngestWorkers    int
	ReportMaxPlayers int
	LogLevel         logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	ingestWorkers, err := getEnvAsInt("INGEST_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_WORKERS: %w", err)
	}
	if ingestWorkers <= 0 {
		return Config{}, fmt.Errorf("INGEST_WORKERS must be > 0")
	}

	reportMaxPlayers, err := getEnvAsInt("REPORT_MAX_PLAYERS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_MAX_PLAYERS: %w", err)
	}
	if reportMaxPlayers < 0 {
		return Config{}, fmt.Errorf("REPORT_MAX_PLAYERS must not be negative")
	}

	return Config{
		AppEnv:           appEnv,
		ServiceName:      getEnv("SERVICE_NAME", "lfl-stats"),
		DBURL:            strings.TrimSpace(getEnv("DB_URL", "")),
		IngestWorkers:    ingestWorkers,
		ReportMaxPlayers: reportMaxPlayers,
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s", v, EnvDev, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
