// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv) unless RENDER is set, maps to Config via
// go-simpler/env struct tags. MONGO_URL is the only required variable.
package config
