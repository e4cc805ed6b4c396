package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Shop        ShopConfig
}

// ShopConfig is used to call the shop API for the catalog and order submission
type ShopConfig struct {
	BaseURL string        // e.g. http://localhost:8081
	Timeout time.Duration // per-request timeout
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_URL", "http://localhost:8081")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", "30")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeoutSeconds, err := strconv.Atoi(getEnvOrViper("HTTP_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a positive integer")
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8081"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Shop: ShopConfig{
			BaseURL: strings.TrimSpace(getEnvOrViper("API_URL", "http://localhost:8081")),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}

	if cfg.Shop.BaseURL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
