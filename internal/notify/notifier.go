// Package notify delivers reminders and live events to whoever is watching
// the tracker: connected views over WebSocket, or the log when running
// headless.
package notify

import (
	"context"
	"log/slog"
)

type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

//go:generate mockgen -source=notifier.go -destination=mocks/notifier_mock.go -package=mocks
type Notifier interface {
	// Asks for the right to deliver notifications. Returns an error when
	// notifications can't be delivered at all.
	RequestPermission(ctx context.Context) (Permission, error)
	// Current permission, without asking.
	Permission() Permission
	Notify(ctx context.Context, title, body string) error
}

// LogNotifier writes notifications to the log. It is always allowed to.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) RequestPermission(ctx context.Context) (Permission, error) {
	return PermissionGranted, nil
}

func (n *LogNotifier) Permission() Permission {
	return PermissionGranted
}

func (n *LogNotifier) Notify(ctx context.Context, title, body string) error {
	n.logger.InfoContext(ctx, "notification", slog.String("title", title), slog.String("body", body))
	return nil
}
