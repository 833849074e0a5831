package participantrepo

import (
	"context"
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParticipantRepository implements ParticipantRepository using GORM.
type GormParticipantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParticipantRepository creates a new GORM participant repository.
func NewGormParticipantRepository(db *gorm.DB, tracker aggregateTracker) *GormParticipantRepository {
	return &GormParticipantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new participant to the database.
func (r *GormParticipantRepository) Add(ctx context.Context, aggregate *participant.Participant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing participant to the database.
func (r *GormParticipantRepository) Update(ctx context.Context, aggregate *participant.Participant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a participant by ID.
func (r *GormParticipantRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParticipantDTO
	err := r.db.WithContext(ctx).
		Preload("TruckTypes").
		First(&dto, "id = ?", id.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("participant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCarriersByTruckType retrieves all carriers operating the given truck type.
func (r *GormParticipantRepository) GetCarriersByTruckType(
	ctx context.Context,
	truckType vehicle.TruckType,
) ([]*participant.Participant, error) {
	if err := truckType.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParticipantDTO
	err := r.db.WithContext(ctx).
		Preload("TruckTypes").
		Joins("JOIN participant_truck_types ptt ON ptt.participant_id = participants.id").
		Where("participants.role = ? AND ptt.truck_type = ?", participant.Carrier, truckType.String()).
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	carriers := make([]*participant.Participant, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		carriers = append(carriers, aggregate)
	}

	return carriers, nil
}
