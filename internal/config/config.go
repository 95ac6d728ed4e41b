// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	API    APIConfig
	App    AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// APIConfig holds the Storm backend API settings. Every data operation
// goes through this single collaborator.
type APIConfig struct {
	BaseURL string
	// Key is the static API key sent in the Authorization header of every
	// backend request.
	Key string
	// Timeout bounds each backend call, in seconds. No retries are
	// attempted on top of it.
	Timeout int
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Env string
}

// Production reports whether the app runs with production settings
// (secure cookies on).
func (a AppConfig) Production() bool { return a.Env == "production" }

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		API: APIConfig{
			BaseURL: getEnv("STORM_API_URL", "http://localhost:4000"),
			Key:     getEnv("STORM_API_KEY", ""),
			Timeout: getEnvInt("STORM_API_TIMEOUT", 30),
		},
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
