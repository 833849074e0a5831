package ports

import (
	"context"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"
)

// ParticipantRepository defines the persistence contract for marketplace
// participants (customers and carriers).
type ParticipantRepository interface {
	// Add persists a new participant aggregate to storage.
	Add(ctx context.Context, aggregate *participant.Participant) error

	// Update persists changes to an existing participant aggregate.
	Update(ctx context.Context, aggregate *participant.Participant) error

	// Get retrieves a participant by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such participant exists.
	Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error)

	// GetCarriersByTruckType retrieves all carriers that operate the given
	// truck type. Used to fan out new-order notifications.
	GetCarriersByTruckType(ctx context.Context, truckType vehicle.TruckType) ([]*participant.Participant, error)
}
