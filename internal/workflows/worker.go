package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// WorkerCore defines the interface for the share verification workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// VerifyShareWorkflow waits for the platform to index a share, checks it against the
	// video statistics API and applies the resulting credit, rewards and notifications
	VerifyShareWorkflow(ctx workflow.Context, shareID string) error
}

type WorkerCoreConfig struct {
	// VerificationDelay is how long to wait before the first statistics lookup
	VerificationDelay time.Duration
	// MaxAttempts caps the statistics lookup retries
	MaxAttempts int32
	// InitialInterval is the first retry back-off
	InitialInterval time.Duration
	// MaxInterval caps the retry back-off
	MaxInterval time.Duration
}

// DefaultWorkerCoreConfig returns the verification defaults
func DefaultWorkerCoreConfig() WorkerCoreConfig {
	return WorkerCoreConfig{
		VerificationDelay: domain.DEFAULT_VERIFICATION_DELAY,
		MaxAttempts:       8,
		InitialInterval:   5 * time.Second,
		MaxInterval:       5 * time.Minute,
	}
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
	config   WorkerCoreConfig
}

// NewWorkerCore creates a new worker core instance.
// Zero values in config fall back to the defaults.
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	defaults := DefaultWorkerCoreConfig()
	if config.VerificationDelay <= 0 {
		config.VerificationDelay = defaults.VerificationDelay
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.InitialInterval <= 0 {
		config.InitialInterval = defaults.InitialInterval
	}
	if config.MaxInterval <= 0 {
		config.MaxInterval = defaults.MaxInterval
	}

	return &workerCore{
		executor: executor,
		config:   config,
	}
}
