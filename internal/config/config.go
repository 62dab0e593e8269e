package config

import (
	"os"
	"strconv"

	"seqhypo/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Engine  EngineConfig
	Battery BatteryConfig
	Logging LoggingConfig
}

// EngineConfig holds enumeration and verification settings
type EngineConfig struct {
	Workers           int
	ParallelThreshold int64
	SampleSize        int
}

// BatteryConfig holds generated-case settings
type BatteryConfig struct {
	Seed          int64
	WindowRadius  int64
	CasesFile     string
	ReportXLSX    string
	StopOnFailure bool
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Engine:  *loadEngineConfig(),
		Battery: *loadBatteryConfig(),
		Logging: *loadLoggingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadEngineConfig() *EngineConfig {
	return &EngineConfig{
		Workers:           getEnvIntOrDefault("SEQHYPO_WORKERS", 0),
		ParallelThreshold: getEnvInt64OrDefault("SEQHYPO_PARALLEL_THRESHOLD", 100000),
		SampleSize:        getEnvIntOrDefault("SEQHYPO_SAMPLE_SIZE", 3),
	}
}

func loadBatteryConfig() *BatteryConfig {
	return &BatteryConfig{
		Seed:          getEnvInt64OrDefault("SEQHYPO_SEED", 42),
		WindowRadius:  getEnvInt64OrDefault("SEQHYPO_WINDOW_RADIUS", 2000),
		CasesFile:     getEnvOrDefault("SEQHYPO_CASES_FILE", ""),
		ReportXLSX:    getEnvOrDefault("SEQHYPO_REPORT_XLSX", ""),
		StopOnFailure: getEnvBoolOrDefault("SEQHYPO_STOP_ON_FAILURE", false),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: getEnvOrDefault("SEQHYPO_LOG_LEVEL", "info"),
	}
}

func validateConfig(config *Config) error {
	if config.Engine.Workers < 0 {
		return errors.ConfigInvalid("SEQHYPO_WORKERS must be >= 0")
	}
	if config.Engine.SampleSize < 0 {
		return errors.ConfigInvalid("SEQHYPO_SAMPLE_SIZE must be >= 0")
	}
	if config.Battery.WindowRadius < 0 {
		return errors.ConfigInvalid("SEQHYPO_WINDOW_RADIUS must be >= 0")
	}
	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.ConfigInvalid("SEQHYPO_LOG_LEVEL must be one of debug|info|warn|error")
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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
