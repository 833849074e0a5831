package jobs

import (
	"context"
	"log/slog"
	"time"

	"freighthub/internal/core/application/usecases/commands"
	"freighthub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// WindowSweepJob reconciles bidding-window timers against persisted deadlines.
// Runs every 30 seconds: windows already past their deadline are closed, and
// still-running windows get their in-process timer re-armed. The first pass
// runs synchronously at startup, so windows that expired while the process
// was down are closed and live timers are rebuilt before traffic arrives.
type WindowSweepJob struct {
	closeHandler    commands.CloseAuctionCommandHandler
	openOrdersQuery queries.GetOpenOrdersQueryHandler
	timer           *WindowTimer
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewWindowSweepJob creates the reconciliation job.
func NewWindowSweepJob(
	closeHandler commands.CloseAuctionCommandHandler,
	openOrdersQuery queries.GetOpenOrdersQueryHandler,
	timer *WindowTimer,
	logger *slog.Logger,
) *WindowSweepJob {
	return &WindowSweepJob{
		closeHandler:    closeHandler,
		openOrdersQuery: openOrdersQuery,
		timer:           timer,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "window_sweep_job"),
	}
}

// Start runs one reconciliation pass immediately, then every 30 seconds.
func (j *WindowSweepJob) Start() error {
	ctx := context.Background()
	j.sweep(ctx)

	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Window sweep job started (running every 30 seconds)")
	return nil
}

// Stop stops the window sweep job.
func (j *WindowSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Window sweep job stopped")
}

func (j *WindowSweepJob) sweep(ctx context.Context) {
	openOrders, err := j.openOrdersQuery.Handle(ctx, queries.NewGetOpenOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Window sweep failed to list open orders", "error", err)
		return
	}

	now := time.Now().UTC()
	for _, openOrder := range openOrders {
		if openOrder.WindowCloseAt.After(now) {
			j.timer.Schedule(openOrder.OrderID, openOrder.WindowCloseAt)
			continue
		}

		cmd, cmdErr := commands.NewCloseAuctionCommand(openOrder.OrderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Window sweep failed to build close command",
				"order_id", openOrder.OrderID.String(), "error", cmdErr)
			continue
		}

		if closeErr := j.closeHandler.Handle(ctx, cmd); closeErr != nil {
			j.logger.ErrorContext(ctx, "Window sweep failed to close expired window",
				"order_id", openOrder.OrderID.String(), "error", closeErr)
		}
	}
}
