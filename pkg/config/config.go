// Package config loads application configuration from the environment and
// provides the seed accounts the directory is populated with at startup.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds the application configuration.
type App struct {
	Env      string `envconfig:"ATM_ENV" default:"development"`
	SeedFile string `envconfig:"ATM_SEED_FILE"`
	Log      Log
}

// Log holds logging configuration.
type Log struct {
	Level  string `envconfig:"ATM_LOG_LEVEL" default:"info"`
	Format string `envconfig:"ATM_LOG_FORMAT" default:"text"`
}

// Load reads configuration from the environment, optionally loading a .env
// file first. A missing .env file is not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Failed to load environment file", "path", path, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", path)
		break
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level name to a slog.Level.
// Unknown names fall back to info.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
