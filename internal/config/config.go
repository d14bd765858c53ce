// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/apikeygen/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the web display server will bind to.
	ServerHost string
	// ServerPort is the port number the web display server will listen on.
	ServerPort int
	// ShutdownTimeout bounds the graceful shutdown of the servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat selects the slog handler ("text" or "json").
	LogFormat string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// ClipboardFallbackEnabled allows the OSC 52 terminal fallback when no system clipboard is found.
	ClipboardFallbackEnabled bool
	// CopyTimeout bounds a single clipboard copy.
	CopyTimeout time.Duration

	// MaxKeysPerRequest caps how many keys a single CLI call or HTTP request can issue.
	MaxKeysPerRequest int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "127.0.0.1"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel:  env.GetString("LOG_LEVEL", "info"),
		LogFormat: env.GetString("LOG_FORMAT", "text"),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "apikeygen"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Clipboard
		ClipboardFallbackEnabled: env.GetBool("CLIPBOARD_FALLBACK_ENABLED", true),
		CopyTimeout:              env.GetDuration("COPY_TIMEOUT_SECONDS", 5, time.Second),

		// Issuance
		MaxKeysPerRequest: env.GetInt("MAX_KEYS_PER_REQUEST", 100),
	}
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerHost, validation.Required, customValidation.NoWhitespace),
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ShutdownTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LogLevel, validation.Required, customValidation.OneOf("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.Required, customValidation.OneOf("text", "json")),
		validation.Field(&c.CORSAllowOrigins,
			validation.When(c.CORSEnabled, validation.Required, customValidation.NotBlank),
		),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, customValidation.NotBlank),
		),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled,
				validation.Required,
				validation.Min(1),
				validation.Max(65535),
				validation.NotIn(c.ServerPort).Error("must differ from the server port"),
			),
		),
		validation.Field(&c.CopyTimeout, validation.Required, validation.Min(100*time.Millisecond)),
		validation.Field(&c.MaxKeysPerRequest, validation.Required, validation.Min(1), validation.Max(1000)),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
