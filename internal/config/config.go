package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Payment    PaymentConfig
	Restaurant RestaurantConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// PaymentConfig identifies the payee on generated UPI links.
type PaymentConfig struct {
	UPIID     string
	PayeeName string
	Currency  string
}

// RestaurantConfig holds restaurant identity settings.
type RestaurantConfig struct {
	Name string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Payment: PaymentConfig{
			UPIID:     getEnv("UPI_ID", "9390978060@pthdfc"),
			PayeeName: getEnv("UPI_PAYEE_NAME", "Spice Palace"),
			Currency:  getEnv("UPI_CURRENCY", "INR"),
		},
		Restaurant: RestaurantConfig{
			Name: getEnv("RESTAURANT_NAME", "Spice Palace"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Payment.UPIID == "" {
		return fmt.Errorf("UPI payee ID is required")
	}

	if c.Payment.PayeeName == "" {
		return fmt.Errorf("UPI payee name is required")
	}

	if c.Payment.Currency == "" {
		return fmt.Errorf("payment currency is required")
	}

	if c.Restaurant.Name == "" {
		return fmt.Errorf("restaurant name is required")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
