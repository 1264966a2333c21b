package config

import (
	"os"
	"strconv"
	"time"

	"launchdash/internal"
	"launchdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Logging   LoggingConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// DataConfig holds dataset settings
type DataConfig struct {
	File              string
	SummaryConfidence float64
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level internal.LogLevel
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Default values
const (
	DefaultDataFile   = "spacex_launch_dash.csv"
	DefaultPort       = "8090"
	DefaultPprofPort  = "6060"
	DefaultConfidence = 0.95
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	logging, err := loadLoggingConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logging configuration")
	}
	server, err := loadServerConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load server configuration")
	}
	data, err := loadDataConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load data configuration")
	}
	profiling, err := loadProfilingConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiling configuration")
	}

	config := &Config{
		Server:    *server,
		Data:      *data,
		Logging:   *logging,
		Profiling: *profiling,
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() (*ServerConfig, error) {
	timeout, err := getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", DefaultPort),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: timeout,
	}, nil
}

func loadDataConfig() (*DataConfig, error) {
	confidence, err := getEnvFloatOrDefault("SUMMARY_CONFIDENCE", DefaultConfidence)
	if err != nil {
		return nil, err
	}
	return &DataConfig{
		File:              getEnvOrDefault("DATA_FILE", DefaultDataFile),
		SummaryConfidence: confidence,
	}, nil
}

func loadLoggingConfig() (*LoggingConfig, error) {
	raw := getEnvOrDefault("LOG_LEVEL", "INFO")
	level, ok := internal.ParseLogLevel(raw)
	if !ok {
		return nil, errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE, got " + strconv.Quote(raw))
	}
	return &LoggingConfig{Level: level}, nil
}

func loadProfilingConfig() (*ProfilingConfig, error) {
	enabled, err := getEnvBoolOrDefault("PPROF_ENABLED", false)
	if err != nil {
		return nil, err
	}
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", DefaultPprofPort),
		Enabled: enabled,
	}, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	if config.Profiling.Enabled && config.Profiling.Port == config.Server.Port {
		return errors.ConfigInvalid("PPROF_PORT must differ from PORT")
	}
	if c := config.Data.SummaryConfidence; c <= 0 || c >= 1 {
		return errors.ConfigInvalid("SUMMARY_CONFIDENCE must be between 0 and 1")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return errors.ConfigInvalid("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing.
// A set but unparseable value is CONFIG_INVALID, never the default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, invalidValue(key, value, "a number")
	}
	return floatValue, nil
}

func getEnvBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, invalidValue(key, value, "true or false")
	}
	return boolValue, nil
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, invalidValue(key, value, "a duration such as 5s")
	}
	return duration, nil
}

func invalidValue(key, value, want string) error {
	return errors.ConfigInvalid(key + " must be " + want + ", got " + strconv.Quote(value))
}
