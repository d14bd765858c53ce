package app

import (
	"crypto/rand"
	"fmt"

	apikeyHTTP "github.com/allisson/apikeygen/internal/apikey/http"
	apikeyService "github.com/allisson/apikeygen/internal/apikey/service"
	apikeyUseCase "github.com/allisson/apikeygen/internal/apikey/usecase"
)

// KeyIssuer returns the api key issuer.
func (c *Container) KeyIssuer() apikeyService.KeyIssuer {
	c.keyIssuerInit.Do(func() {
		c.keyIssuer = c.initKeyIssuer()
	})
	return c.keyIssuer
}

// Display returns the terminal display.
func (c *Container) Display() apikeyService.Display {
	c.displayInit.Do(func() {
		c.display = apikeyService.NewTerminalDisplay(c.stdout, c.displayFormat)
	})
	return c.display
}

// Clipboard returns the detected clipboard sink.
func (c *Container) Clipboard() apikeyService.ClipboardSink {
	c.clipboardInit.Do(func() {
		c.clipboard = apikeyService.NewClipboardSink(apikeyService.ClipboardOptions{
			Terminal:        c.stderr,
			FallbackEnabled: c.config.ClipboardFallbackEnabled,
		})
	})
	return c.clipboard
}

// Notifier returns the notifier that reports to the terminal and the log.
func (c *Container) Notifier() apikeyService.Notifier {
	c.notifierInit.Do(func() {
		c.notifier = apikeyService.NewMultiNotifier(
			apikeyService.NewTerminalNotifier(c.stderr),
			apikeyService.NewLoggerNotifier(c.Logger()),
		)
	})
	return c.notifier
}

// KeyUseCase returns the key use case, wrapped with metrics when enabled.
func (c *Container) KeyUseCase() (apikeyUseCase.KeyUseCase, error) {
	var err error
	c.keyUseCaseInit.Do(func() {
		c.keyUseCase, err = c.initKeyUseCase()
		if err != nil {
			c.initErrors["keyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyUseCase"]; exists {
		return nil, storedErr
	}
	return c.keyUseCase, nil
}

// KeyHandler returns the web display handler.
func (c *Container) KeyHandler() (*apikeyHTTP.KeyHandler, error) {
	var err error
	c.keyHandlerInit.Do(func() {
		c.keyHandler, err = c.initKeyHandler()
		if err != nil {
			c.initErrors["keyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyHandler"]; exists {
		return nil, storedErr
	}
	return c.keyHandler, nil
}

// initKeyIssuer uses crypto/rand unless another source was injected.
func (c *Container) initKeyIssuer() apikeyService.KeyIssuer {
	source := c.random
	if source == nil {
		source = rand.Reader
	}
	return apikeyService.NewKeyIssuer(apikeyService.WithRandomSource(source))
}

func (c *Container) initKeyUseCase() (apikeyUseCase.KeyUseCase, error) {
	baseUseCase := apikeyUseCase.NewKeyUseCase(
		c.KeyIssuer(),
		c.Display(),
		c.Clipboard(),
		c.Notifier(),
		c.Logger(),
		c.config.CopyTimeout,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
		}
		return apikeyUseCase.NewKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initKeyHandler() (*apikeyHTTP.KeyHandler, error) {
	keyUseCase, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for key handler: %w", err)
	}
	return apikeyHTTP.NewKeyHandler(keyUseCase, c.config.MaxKeysPerRequest, c.Logger()), nil
}
