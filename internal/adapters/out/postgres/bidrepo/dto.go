// Package bidrepo provides data transfer objects and mapping functions for bid persistence.
package bidrepo

import (
	"time"

	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database structure for persisting bid aggregates.
// The composite unique index enforces one live bid per carrier per order.
type BidDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_bids_order_carrier"`
	CarrierID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_bids_order_carrier"`
	Price       int64
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts a bid domain aggregate to its database representation.
func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CarrierID:   aggregate.CarrierID().Bytes(),
		Price:       aggregate.Price().Amount(),
		SubmittedAt: aggregate.SubmittedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a bid domain aggregate using RestoreBid.
func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, orderID, carrierID, price, dto.SubmittedAt, dto.UpdatedAt)
}
