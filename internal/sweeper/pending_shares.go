package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/providers/temporal"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/workflows"
)

// PendingShareSweeperConfig holds configuration for the pending share sweeper
type PendingShareSweeperConfig struct {
	Interval       time.Duration // Time between sweep cycles
	BatchSize      int           // Shares loaded per cycle
	StaleAfter     time.Duration // Only re-enqueue shares older than this
	WorkerPoolSize int           // Concurrent workflow submissions
	TaskQueue      string        // Verification task queue

	// Submission retry bounds for transient Temporal errors
	RetryInitialInterval time.Duration
	RetryMaxElapsedTime  time.Duration
}

// pendingShareSweeper re-enqueues YouTube shares whose verification never started
type pendingShareSweeper struct {
	config       PendingShareSweeperConfig
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	clock        adapter.Clock
	pool         pond.Pool
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// NewPendingShareSweeper creates a new pending share sweeper
func NewPendingShareSweeper(
	config PendingShareSweeperConfig,
	st store.Store,
	orchestrator temporal.TemporalOrchestrator,
	clock adapter.Clock,
) Sweeper {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.StaleAfter <= 0 {
		config.StaleAfter = 2 * time.Minute
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 10
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = time.Second
	}
	if config.RetryMaxElapsedTime <= 0 {
		config.RetryMaxElapsedTime = 30 * time.Second
	}

	return &pendingShareSweeper{
		config:       config,
		store:        st,
		orchestrator: orchestrator,
		clock:        clock,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *pendingShareSweeper) Name() string {
	return "pending-share-sweeper"
}

// Start schedules sweep cycles and blocks until the context is canceled or Stop is called
func (s *pendingShareSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.config.Interval),
		gocron.NewTask(func() {
			if err := s.runSweepCycle(ctx); err != nil {
				logger.ErrorCtx(ctx, err)
			}
		}),
		gocron.WithName(s.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep job: %w", err)
	}

	logger.InfoCtx(ctx, "Starting pending share sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("stale_after", s.config.StaleAfter),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)
	scheduler.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Pending share sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Pending share sweeper stop requested")
	}

	if err := scheduler.Shutdown(); err != nil {
		logger.WarnCtx(ctx, "Failed to shut down scheduler", zap.Error(err))
	}

	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *pendingShareSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping pending share sweeper")

	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Pending share sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Pending share sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle submits a verification for every stale pending share and waits for the batch
func (s *pendingShareSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	createdBefore := startTime.Add(-s.config.StaleAfter)

	shares, err := s.store.ListPendingShares(ctx, domain.PlatformYouTube, createdBefore, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending shares: %w", err)
	}
	if len(shares) == 0 {
		logger.DebugCtx(ctx, "No pending shares to re-enqueue")
		return nil
	}

	var startedCount, runningCount, failedCount atomic.Int32

	group := s.pool.NewGroup()
	for _, share := range shares {
		shareID := share.ID
		group.Submit(func() {
			started, err := s.enqueue(ctx, shareID)
			switch {
			case err != nil:
				failedCount.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("shareID", shareID))
			case started:
				startedCount.Add(1)
			default:
				runningCount.Add(1)
			}
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("sweep cycle interrupted: %w", err)
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("pending", len(shares)),
		zap.Int32("started", startedCount.Load()),
		zap.Int32("already_running", runningCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	return nil
}

// enqueue starts the share's verification, retrying transient Temporal errors
func (s *pendingShareSweeper) enqueue(ctx context.Context, shareID string) (bool, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInitialInterval
	b.MaxElapsedTime = s.config.RetryMaxElapsedTime

	var started bool
	operation := func() error {
		var err error
		started, err = workflows.StartVerifyShare(ctx, s.orchestrator, s.config.TaskQueue, shareID)
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Failed to enqueue share verification, retrying",
			zap.String("shareID", shareID),
			zap.Error(err),
			zap.Duration("retry_in", wait),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return false, fmt.Errorf("failed to enqueue share verification: %w", err)
	}
	return started, nil
}
