package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	httpin "freighthub/internal/adapters/in/http"
	"freighthub/internal/adapters/out/postgres"
	"freighthub/internal/adapters/out/rediscache"
	"freighthub/internal/adapters/out/webhook"
	"freighthub/internal/core/application/usecases/commands"
	"freighthub/internal/core/application/usecases/queries"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/ports"
	"freighthub/internal/jobs"
	"freighthub/internal/pkg/orderlock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const summaryCacheTTL = 3 * time.Second

// CompositionRoot wires adapters, use cases and jobs into a running system.
// All shared infrastructure (lock registry, window timer, publisher) is
// created once here and handed to every handler that needs it.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	locks       *orderlock.Registry
	windowTimer *jobs.WindowTimer
	publisher   ports.EventPublisher
	cache       queries.SummaryCache
	logger      *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var publisher ports.EventPublisher
	if config.WebhookURL != "" {
		publisher = webhook.NewPublisher(config.WebhookURL)
	} else {
		publisher = webhook.NewLogPublisher(logger)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	root := &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:       orderlock.NewRegistry(),
		windowTimer: jobs.NewWindowTimer(logger),
		publisher:   publisher,
		cache:       rediscache.NewSummaryCache(redisClient, summaryCacheTTL),
		logger:      logger,
	}

	root.bindWindowTimer()
	return root
}

// bindWindowTimer closes the scheduler/handler dependency cycle: the close
// handler needs the scheduler, and expiring timers invoke the close handler.
func (c *CompositionRoot) bindWindowTimer() {
	closeHandler := c.CreateCloseAuctionCommandHandler()
	c.windowTimer.BindCloser(func(ctx context.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewCloseAuctionCommand(orderID)
		if err != nil {
			return err
		}
		return closeHandler.Handle(ctx, cmd)
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	window := time.Duration(c.config.AuctionWindowMinutes) * time.Minute
	return commands.NewCreateOrderCommandHandler(f, c.windowTimer, c.publisher, c.logger, window)
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() commands.PlaceBidCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceBidCommandHandler(f, c.locks)
}

func (c *CompositionRoot) CreateCloseAuctionCommandHandler() commands.CloseAuctionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseAuctionCommandHandler(
		f, c.locks, c.windowTimer, c.publisher, c.logger, c.config.AuctionAutoSelect)
}

func (c *CompositionRoot) CreateSelectWinnerCommandHandler() commands.SelectWinnerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectWinnerCommandHandler(f, c.locks, c.windowTimer, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateConfirmCompletionCommandHandler() commands.ConfirmCompletionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCompletionCommandHandler(f, c.locks, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.locks, c.windowTimer, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderBidsQueryHandler() queries.GetOrderBidsQueryHandler {
	return queries.NewGetOrderBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter over all use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreatePlaceBidCommandHandler(),
		c.CreateCloseAuctionCommandHandler(),
		c.CreateSelectWinnerCommandHandler(),
		c.CreateConfirmCompletionCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.CreateGetOrderBidsQueryHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
	)
}

// CreateJobManager assembles the window sweep and timer machinery.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewWindowSweepJob(
		c.CreateCloseAuctionCommandHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		c.windowTimer,
		c.logger,
	)
	return jobs.NewJobManager(sweep, c.windowTimer)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
