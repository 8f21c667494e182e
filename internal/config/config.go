// Package config provides configuration management functionality.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	InputPath           string   // transaction log read by the batch runner
	LogLevel            string   // debug, info, warn, error
	LogPretty           bool     // console output instead of JSON
	HTTPAddr            string   // listen address for cmd/server
	DatabaseURL         string   // postgres journal; empty keeps the journal in memory
	KafkaBrokers        []string // empty disables event publishing
	KafkaTopic          string
	LegacyItemDecrement bool // also take sold item prices out of the drawer
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		InputPath:           getEnv("TILL_INPUT_PATH", "input.txt"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPretty:           getEnvAsBool("LOG_PRETTY", false),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		KafkaBrokers:        getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "till_transaction_processed"),
		LegacyItemDecrement: getEnvAsBool("TILL_LEGACY_ITEM_DECREMENT", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
