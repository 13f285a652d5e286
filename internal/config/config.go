package config

import (
	"os"
	"strconv"
	"time"

	"dealqa/internal/errors"
)

// Default base URL for the PubMatic API; overridable per environment.
const defaultBaseURL = "https://api.pubmatic.com"

// Config represents the complete application configuration
type Config struct {
	API    APIConfig
	Report ReportConfig
}

// APIConfig holds deals API connection settings
type APIConfig struct {
	BaseURL string
	// Timeout of zero keeps the historical no-deadline behavior.
	Timeout  time.Duration
	DataPath string
}

// ReportConfig holds report output settings
type ReportConfig struct {
	OutputPath string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		API: APIConfig{
			BaseURL:  getEnvOrDefault("DEALQA_BASE_URL", defaultBaseURL),
			Timeout:  time.Duration(getEnvIntOrDefault("DEALQA_TIMEOUT_SECONDS", 0)) * time.Second,
			DataPath: getEnvOrDefault("DEALQA_DATA_PATH", ""),
		},
		Report: ReportConfig{
			OutputPath: getEnvOrDefault("DEALQA_OUTPUT", "deal_qa_report.xlsx"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return errors.ConfigInvalid("API base URL cannot be empty")
	}
	if config.API.Timeout < 0 {
		return errors.ConfigInvalid("DEALQA_TIMEOUT_SECONDS cannot be negative")
	}
	if config.Report.OutputPath == "" {
		return errors.ConfigInvalid("report output path cannot be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
