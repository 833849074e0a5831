package bidrepo

import (
	"context"
	"errors"

	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBidRepository implements BidRepository using GORM.
type GormBidRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBidRepository creates a new GORM bid repository.
func NewGormBidRepository(db *gorm.DB, tracker aggregateTracker) *GormBidRepository {
	return &GormBidRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bid to the database.
// The unique index on (order_id, carrier_id) rejects a second bid from the
// same carrier; callers update the existing bid instead.
func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
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

// Update saves an existing bid to the database.
func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BidDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bid by ID.
func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndCarrier retrieves the carrier's live bid on the order.
func (r *GormBidRepository) GetByOrderAndCarrier(
	ctx context.Context,
	orderID, carrierID kernel.UUID,
) (*bid.Bid, error) {
	if err := errors.Join(orderID.Validate(), carrierID.Validate()); err != nil {
		return nil, err
	}

	var dto BidDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND carrier_id = ?", orderID.Bytes(), carrierID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all bids for the order, cheapest first,
// ties broken by earliest submission.
func (r *GormBidRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("price, submitted_at").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		bids = append(bids, aggregate)
	}

	return bids, nil
}

// CountByOrder returns the number of live bids on the order.
func (r *GormBidRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&BidDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
