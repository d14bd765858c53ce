package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/apikeygen/internal/apikey/domain"
)

type terminalNotifier struct {
	w io.Writer
}

// NewTerminalNotifier creates a Notifier that prints "[kind] message" lines.
func NewTerminalNotifier(w io.Writer) Notifier {
	return &terminalNotifier{w: w}
}

// Notify writes the notification; write errors are ignored since there is nowhere to report them.
func (n *terminalNotifier) Notify(ctx context.Context, notification domain.Notification) {
	_, _ = fmt.Fprintf(n.w, "[%s] %s\n", notification.Kind, notification.Message)
}

type loggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier creates a Notifier that records notifications in the structured log.
func NewLoggerNotifier(logger *slog.Logger) Notifier {
	return &loggerNotifier{logger: logger}
}

// Notify logs error notifications at warn level and the rest at debug level.
func (n *loggerNotifier) Notify(ctx context.Context, notification domain.Notification) {
	level := slog.LevelDebug
	if notification.IsError() {
		level = slog.LevelWarn
	}
	n.logger.LogAttrs(ctx, level, "notification",
		slog.String("kind", notification.Kind.String()),
		slog.String("message", notification.Message),
	)
}

type multiNotifier []Notifier

// NewMultiNotifier fans a notification out to every non-nil notifier in order.
func NewMultiNotifier(notifiers ...Notifier) Notifier {
	m := make(multiNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

// Notify forwards the notification.
func (m multiNotifier) Notify(ctx context.Context, notification domain.Notification) {
	for _, n := range m {
		n.Notify(ctx, notification)
	}
}
