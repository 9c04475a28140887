// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/probelab/latscope/internal/throughput"
)

// Config holds the application configuration. Command-line flags override
// these values where a flag exists.
type Config struct {
	// TradeFilePath is the fixed location of the optional trade table.
	TradeFilePath string
	// OutputDir receives the report and chart artifacts.
	OutputDir string
	// WindowSize is the number of records per throughput window.
	WindowSize int
	// AlertP99Us triggers a desktop notification when the overall 99th
	// percentile exceeds this many microseconds. Zero disables the alert.
	AlertP99Us float64
}

// Default values
const (
	defaultTradeFilePath = "data/simulation_trades.csv"
	defaultOutputDir     = "analysis_output"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		TradeFilePath: getEnvString("LATSCOPE_TRADE_FILE", defaultTradeFilePath),
		OutputDir:     getEnvString("LATSCOPE_OUTPUT_DIR", defaultOutputDir),
		WindowSize:    getEnvInt("LATSCOPE_WINDOW_SIZE", throughput.DefaultWindowSize),
		AlertP99Us:    getEnvFloat("LATSCOPE_ALERT_P99_US", 0),
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "latscope", ".env"))
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the
// default. Non-positive or unparseable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultValue
}
