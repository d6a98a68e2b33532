package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"8000"`

	MongoURL string `env:"MONGO_URL"`
	DBName   string `env:"DB_NAME" default:"medicapsoia"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	// Render and similar platforms inject environment variables directly;
	// a .env file is only read for local runs.
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			slog.Info("No .env file found, using environment variables")
		}
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MongoURL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	return nil
}
