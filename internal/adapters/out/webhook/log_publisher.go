package webhook

import (
	"context"
	"log/slog"

	"freighthub/internal/core/domain/events"
)

// LogPublisher writes notification events to the structured log instead of
// an external endpoint. Used when no webhook URL is configured, so lifecycle
// transitions stay observable in development and tests.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that logs events.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event at info level. Never fails.
func (p *LogPublisher) Publish(_ context.Context, event events.NotificationEvent) error {
	recipients := make([]string, 0, len(event.Recipients))
	for _, r := range event.Recipients {
		recipients = append(recipients, r.String())
	}

	p.logger.Info("notification event",
		"kind", string(event.Kind),
		"order_id", event.OrderID.String(),
		"recipients", recipients,
		"payload", event.Payload)

	return nil
}
