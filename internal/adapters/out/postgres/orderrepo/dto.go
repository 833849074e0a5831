// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and window deadline.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	TruckType       string    `gorm:"type:varchar(64)"`
	Cargo           string
	PickupAddress   string
	DeliveryAddress string
	DeliveryDate    string `gorm:"type:varchar(64)"`
	Status          int    `gorm:"index"`
	WindowOpenAt    time.Time
	WindowCloseAt   time.Time `gorm:"index"`

	WinnerID     *uuid.UUID `gorm:"type:uuid;index"`
	WinningPrice *int64

	CustomerConfirmed bool
	CarrierConfirmed  bool

	CancelledBy   *uuid.UUID `gorm:"type:uuid"`
	CancelledRole *int
	CancelReason  *string
	CancelledAt   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional winner assignment and the
// cancellation audit record.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		TruckType:         aggregate.TruckType().String(),
		Cargo:             aggregate.Cargo(),
		PickupAddress:     aggregate.PickupAddress(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		DeliveryDate:      aggregate.DeliveryDate(),
		Status:            int(aggregate.Status()),
		WindowOpenAt:      aggregate.WindowOpenAt(),
		WindowCloseAt:     aggregate.WindowCloseAt(),
		CustomerConfirmed: aggregate.CustomerConfirmed(),
		CarrierConfirmed:  aggregate.CarrierConfirmed(),
	}

	if winner := aggregate.Winner(); winner != nil {
		raw := winner.Bytes()
		dto.WinnerID = &raw
	}
	if price := aggregate.WinningPrice(); price != nil {
		amount := price.Amount()
		dto.WinningPrice = &amount
	}
	if c := aggregate.Cancellation(); c != nil {
		by := c.By.Bytes()
		role := int(c.Role)
		reason := c.Reason
		at := c.At
		dto.CancelledBy = &by
		dto.CancelledRole = &role
		dto.CancelReason = &reason
		dto.CancelledAt = &at
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including winner assignment and
// confirmation flags using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var winnerID *kernel.UUID
	if dto.WinnerID != nil {
		wID, winnerErr := kernel.UUIDFromBytes((*dto.WinnerID)[:])
		if winnerErr != nil {
			return nil, winnerErr
		}

		winnerID = &wID
	}

	var winningPrice *kernel.Price
	if dto.WinningPrice != nil {
		price, priceErr := kernel.NewPrice(*dto.WinningPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		winningPrice = &price
	}

	var cancellation *order.Cancellation
	if dto.CancelledBy != nil && dto.CancelledRole != nil && dto.CancelledAt != nil {
		by, cancelErr := kernel.UUIDFromBytes((*dto.CancelledBy)[:])
		if cancelErr != nil {
			return nil, cancelErr
		}

		reason := ""
		if dto.CancelReason != nil {
			reason = *dto.CancelReason
		}

		cancellation = &order.Cancellation{
			By:     by,
			Role:   participant.Role(*dto.CancelledRole),
			Reason: reason,
			At:     *dto.CancelledAt,
		}
	}

	return order.RestoreOrder(
		id,
		customerID,
		vehicle.TruckType(dto.TruckType),
		dto.Cargo,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.DeliveryDate,
		order.Status(dto.Status),
		dto.WindowOpenAt,
		dto.WindowCloseAt,
		winnerID,
		winningPrice,
		dto.CustomerConfirmed,
		dto.CarrierConfirmed,
		cancellation,
	)
}
