// Package app provides the dependency injection container that assembles the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/allisson/apikeygen/internal/apikey/domain"
	apikeyHTTP "github.com/allisson/apikeygen/internal/apikey/http"
	apikeyService "github.com/allisson/apikeygen/internal/apikey/service"
	apikeyUseCase "github.com/allisson/apikeygen/internal/apikey/usecase"
	"github.com/allisson/apikeygen/internal/config"
	"github.com/allisson/apikeygen/internal/http"
	"github.com/allisson/apikeygen/internal/metrics"
)

// Container holds the application dependencies. Components are created on first access
// and it is the only place that touches stdout, stderr, the system clipboard and the
// platform random source.
type Container struct {
	// Configuration
	config *config.Config

	// Platform
	stdout        io.Writer
	stderr        io.Writer
	random        io.Reader
	displayFormat string

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	keyIssuer apikeyService.KeyIssuer
	display   apikeyService.Display
	clipboard apikeyService.ClipboardSink
	notifier  apikeyService.Notifier

	// Use Cases
	keyUseCase apikeyUseCase.KeyUseCase

	// Handlers
	keyHandler *apikeyHTTP.KeyHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	keyIssuerInit       sync.Once
	displayInit         sync.Once
	clipboardInit       sync.Once
	notifierInit        sync.Once
	keyUseCaseInit      sync.Once
	keyHandlerInit      sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// ContainerOption customizes a Container.
type ContainerOption func(*Container)

// WithOutput sets where keys are displayed. Defaults to os.Stdout.
func WithOutput(w io.Writer) ContainerOption {
	return func(c *Container) {
		c.stdout = w
	}
}

// WithErrorOutput sets where logs, notifications and the OSC 52 sequence go. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) ContainerOption {
	return func(c *Container) {
		c.stderr = w
	}
}

// WithRandomSource replaces the platform random source.
func WithRandomSource(r io.Reader) ContainerOption {
	return func(c *Container) {
		c.random = r
	}
}

// WithDisplayFormat selects the terminal display format ("text" or "json").
func WithDisplayFormat(format string) ContainerOption {
	return func(c *Container) {
		c.displayFormat = format
	}
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config, opts ...ContainerOption) *Container {
	c := &Container{
		config:        cfg,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		displayFormat: apikeyService.FormatText,
		initErrors:    make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the web display server.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown stops the servers and flushes metrics.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates a slog logger on stderr from LOG_LEVEL and LOG_FORMAT.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: redactAPIKeys,
	}

	var handler slog.Handler
	if c.config.LogFormat == "json" {
		handler = slog.NewJSONHandler(c.stderr, opts)
	} else {
		handler = slog.NewTextHandler(c.stderr, opts)
	}

	return slog.New(handler)
}

// redactAPIKeys masks any string attribute holding a full api key.
func redactAPIKeys(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	if v := a.Value.String(); strings.HasPrefix(v, domain.TokenPrefix) && len(v) == domain.TokenLength {
		return slog.String(a.Key, domain.Token(v).Redacted())
	}
	return a
}

// initMetricsProvider creates the Prometheus backed provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics returns a no-op recorder when metrics are disabled.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the web display server with its routes.
func (c *Container) initHTTPServer() (*http.Server, error) {
	gin.SetMode(c.config.GetGinMode())

	keyHandler, err := c.KeyHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get key handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, keyHandler, provider)

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	gin.SetMode(c.config.GetGinMode())

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
