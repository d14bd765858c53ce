package commands

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/apikeygen/internal/app"
	"github.com/allisson/apikeygen/internal/config"
)

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()
	return listener.Addr().(*net.TCPAddr).Port
}

func serverConfig(t *testing.T) *config.Config {
	return &config.Config{
		ServerHost:        "127.0.0.1",
		ServerPort:        freePort(t),
		ShutdownTimeout:   time.Second,
		LogLevel:          "error",
		LogFormat:         "text",
		MetricsEnabled:    true,
		MetricsNamespace:  "apikeygen",
		MetricsPort:       freePort(t),
		CopyTimeout:       time.Second,
		MaxKeysPerRequest: 100,
	}
}

func TestRunServer(t *testing.T) {
	t.Run("graceful-shutdown-on-cancel", func(t *testing.T) {
		cfg := serverConfig(t)
		container := app.NewContainer(cfg, app.WithErrorOutput(&bytes.Buffer{}))
		defer CloseContainer(container, container.Logger())

		ctx, cancel := context.WithCancel(context.Background())
		errChan := make(chan error, 1)
		go func() {
			errChan <- RunServer(ctx, container, "test")
		}()

		addr := net.JoinHostPort(cfg.ServerHost, strconv.Itoa(cfg.ServerPort))
		require.Eventually(t, func() bool {
			conn, err := net.Dial("tcp", addr)
			if err != nil {
				return false
			}
			_ = conn.Close()
			return true
		}, 2*time.Second, 10*time.Millisecond)

		cancel()

		select {
		case err := <-errChan:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("port-in-use", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer func() { _ = listener.Close() }()

		cfg := serverConfig(t)
		cfg.ServerPort = listener.Addr().(*net.TCPAddr).Port
		container := app.NewContainer(cfg, app.WithErrorOutput(&bytes.Buffer{}))
		defer CloseContainer(container, container.Logger())

		err = RunServer(context.Background(), container, "test")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api server error")
	})
}
