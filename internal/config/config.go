package config

import (
	"os"
	"strconv"

	"loandash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Export ExportConfig
	Charts ChartConfig
	Log    LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the dataset location
type DataConfig struct {
	File string
}

// ExportConfig controls the standalone HTML chart exports
type ExportConfig struct {
	Dir     string
	Enabled bool
}

// ChartConfig holds chart construction settings
type ChartConfig struct {
	HistogramBins int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8050"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			File: getEnvOrDefault("DATA_FILE", "Loan_data.csv"),
		},
		Export: ExportConfig{
			Dir:     getEnvOrDefault("EXPORT_DIR", "."),
			Enabled: getEnvBoolOrDefault("EXPORT_ENABLED", true),
		},
		Charts: ChartConfig{
			HistogramBins: getEnvIntOrDefault("HISTOGRAM_BINS", 30),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	if config.Charts.HistogramBins < 1 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be at least 1")
	}
	if config.Export.Enabled && config.Export.Dir == "" {
		return errors.ConfigInvalid("EXPORT_DIR is required when EXPORT_ENABLED is set")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
