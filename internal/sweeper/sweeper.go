package sweeper

import (
	"context"
)

// Sweeper is a long-running background task that repairs state on a schedule
type Sweeper interface {
	// Start schedules the sweeper's cycles and blocks until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the sweeper to stop and waits for the in-flight cycle to finish
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}
