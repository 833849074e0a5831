package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"freighthub/internal/core/application/usecases/commands"
	"freighthub/internal/core/domain/events"
	"freighthub/internal/core/domain/model/bid"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockBidRepository struct{ mock.Mock }

func (m *MockBidRepository) Add(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBidRepository) Update(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) GetByOrderAndCarrier(
	ctx context.Context,
	orderID, carrierID kernel.UUID,
) (*bid.Bid, error) {
	args := m.Called(ctx, orderID, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*bid.Bid, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bid.Bid), args.Error(1)
}

func (m *MockBidRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockParticipantRepository struct{ mock.Mock }

func (m *MockParticipantRepository) Add(ctx context.Context, p *participant.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipantRepository) Update(ctx context.Context, p *participant.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParticipantRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GetCarriersByTruckType(
	ctx context.Context,
	truckType vehicle.TruckType,
) ([]*participant.Participant, error) {
	args := m.Called(ctx, truckType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participant.Participant), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BidRepository() ports.BidRepository {
	args := m.Called()
	return args.Get(0).(ports.BidRepository)
}

func (m *MockUoW) ParticipantRepository() ports.ParticipantRepository {
	args := m.Called()
	return args.Get(0).(ports.ParticipantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.NotificationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event events.NotificationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Events() []events.NotificationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.NotificationEvent(nil), p.events...)
}

func (p *recordingPublisher) Kinds() []events.Kind {
	kinds := make([]events.Kind, 0)
	for _, evt := range p.Events() {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}

// blockingPublisher parks inside Publish until released, to observe what a
// handler still holds while notification I/O is in flight.
type blockingPublisher struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingPublisher() *blockingPublisher {
	return &blockingPublisher{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (p *blockingPublisher) Publish(_ context.Context, _ events.NotificationEvent) error {
	p.once.Do(func() { close(p.entered) })
	<-p.release
	return nil
}

// recordingScheduler captures timer operations for assertions.
type recordingScheduler struct {
	mu        sync.Mutex
	scheduled []kernel.UUID
	cancelled []kernel.UUID
}

func (s *recordingScheduler) Schedule(orderID kernel.UUID, _ time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, orderID)
}

func (s *recordingScheduler) Cancel(orderID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = append(s.cancelled, orderID)
}

func (s *recordingScheduler) ScheduledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scheduled)
}

func (s *recordingScheduler) CancelledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cancelled)
}

func recipientStrings(event events.NotificationEvent) []string {
	ids := make([]string, 0, len(event.Recipients))
	for _, r := range event.Recipients {
		ids = append(ids, r.String())
	}
	return ids
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCustomer(t *testing.T) *participant.Participant {
	t.Helper()

	customer, err := participant.NewParticipant(
		kernel.NewUUID(), participant.Customer, "Acme Logistics", "+7 900 000-00-01", nil)
	require.NoError(t, err)
	return customer
}

func newTestCarrier(t *testing.T, truckTypes ...vehicle.TruckType) *participant.Participant {
	t.Helper()

	if len(truckTypes) == 0 {
		truckTypes = []vehicle.TruckType{vehicle.LongbedTarpaulin}
	}
	carrier, err := participant.NewParticipant(
		kernel.NewUUID(), participant.Carrier, "Fast Trucking", "+7 900 000-00-02", truckTypes)
	require.NoError(t, err)
	return carrier
}

func newOpenOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, vehicle.LongbedTarpaulin,
		"20 pallets of tile", "Warehouse 4", "Lenina 10", "2026-09-14",
		now, now.Add(time.Hour))
	require.NoError(t, err)
	return o
}

func newTestBid(t *testing.T, orderID, carrierID kernel.UUID, amount int64) *bid.Bid {
	t.Helper()

	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)

	b, err := bid.NewBid(kernel.NewUUID(), orderID, carrierID, price, time.Now().UTC())
	require.NoError(t, err)
	return b
}
