// Package participantrepo provides data transfer objects and mapping functions
// for participant persistence. Carrier truck-type capabilities live in a child
// table so the carrier fan-out query can filter on them directly.
package participantrepo

import (
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// ParticipantDTO represents the database structure for persisting participants.
type ParticipantDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Role       int            `gorm:"type:int;not null;index"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Phone      string         `gorm:"type:varchar(64);not null"`
	TruckTypes []TruckTypeDTO `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for participant entities.
func (ParticipantDTO) TableName() string {
	return "participants"
}

// TruckTypeDTO represents one truck type a carrier operates.
type TruckTypeDTO struct {
	ParticipantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckType     string    `gorm:"type:varchar(64);primaryKey;index"`
}

// TableName specifies the database table name for carrier truck types.
func (TruckTypeDTO) TableName() string {
	return "participant_truck_types"
}

// fromDomain converts a participant domain aggregate to its database representation.
func fromDomain(aggregate *participant.Participant) ParticipantDTO {
	participantID := aggregate.ID().Bytes()

	truckTypes := make([]TruckTypeDTO, 0, len(aggregate.TruckTypes()))
	for _, t := range aggregate.TruckTypes() {
		truckTypes = append(truckTypes, TruckTypeDTO{
			ParticipantID: participantID,
			TruckType:     t.String(),
		})
	}

	return ParticipantDTO{
		ID:         participantID,
		Role:       int(aggregate.Role()),
		Name:       aggregate.Name(),
		Phone:      aggregate.Phone(),
		TruckTypes: truckTypes,
	}
}

// toDomain converts a database DTO to a participant domain aggregate
// using RestoreParticipant.
func toDomain(dto ParticipantDTO) (*participant.Participant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckTypes := make([]vehicle.TruckType, 0, len(dto.TruckTypes))
	for _, t := range dto.TruckTypes {
		truckTypes = append(truckTypes, vehicle.TruckType(t.TruckType))
	}

	return participant.RestoreParticipant(
		id,
		participant.Role(dto.Role),
		dto.Name,
		dto.Phone,
		truckTypes,
	)
}
