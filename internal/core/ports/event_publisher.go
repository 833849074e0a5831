package ports

import (
	"context"

	"freighthub/internal/core/domain/events"
)

// EventPublisher delivers notification events to the outside world.
// Publishing happens after the originating transaction has committed;
// implementations make a single delivery attempt and report failure
// without retrying. Delivery failure never rolls back domain state.
type EventPublisher interface {
	Publish(ctx context.Context, event events.NotificationEvent) error
}
