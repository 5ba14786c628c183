package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

const (
	DefaultPort            = 5555
	DefaultHost            = "localhost"
	DefaultDatabaseURI     = "sqlite://app.db"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment     string        `json:"environment"`
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Database configuration, a single URI selects driver and target
	DatabaseURI string `json:"database_uri"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// CORS configuration
	AllowedOrigins []string `json:"allowed_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, ShutdownTimeout: %s, DatabaseURI: %s, LogLevel: %s, AllowedOrigins: %v}",
		c.Environment, c.Port, c.Host, c.ShutdownTimeout, maskDatabaseURL(c.DatabaseURI), c.LogLevel, c.AllowedOrigins)
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d out of range", port)
	}

	dbURI := GetEnvWithDefault("DB_URI", DefaultDatabaseURI)
	if !strings.Contains(dbURI, "://") {
		return nil, fmt.Errorf("invalid DB_URI format: %s", maskDatabaseURL(dbURI))
	}

	logLevel := GetEnvWithDefault("LOG_LEVEL", DefaultLogLevel)
	if _, err := logrus.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	config := &Config{
		Environment:     GetEnvWithDefault("APP_ENV", "development"),
		Port:            port,
		Host:            GetEnvWithDefault("APP_HOST", DefaultHost),
		ShutdownTimeout: time.Duration(GetEnvAsType("SHUTDOWN_TIMEOUT_SECONDS", DefaultShutdownTimeout)) * time.Second,
		DatabaseURI:     dbURI,
		LogLevel:        logLevel,
		AllowedOrigins:  splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
