package workflows

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/providers/temporal"
)

// VerifyShareWorkflowID returns the deterministic workflow id of a share verification
func VerifyShareWorkflowID(shareID string) string {
	return fmt.Sprintf("verify-share-%s", shareID)
}

// StartVerifyShare enqueues the verification of a share.
// Starting a share that is already running or has already completed is a no-op.
// Returns true when a new execution was started.
func StartVerifyShare(ctx context.Context, orchestrator temporal.TemporalOrchestrator, taskQueue, shareID string) (bool, error) {
	options := client.StartWorkflowOptions{
		ID:                                       VerifyShareWorkflowID(shareID),
		TaskQueue:                                taskQueue,
		WorkflowExecutionTimeout:                 24 * time.Hour,
		WorkflowIDReusePolicy:                    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}

	w := NewWorkerCore(nil, WorkerCoreConfig{})
	run, err := orchestrator.ExecuteWorkflow(ctx, options, w.VerifyShareWorkflow, shareID)
	if err != nil {
		if temporal.IsAlreadyStarted(err) {
			logger.DebugCtx(ctx, "Share verification already enqueued", zap.String("shareID", shareID))
			return false, nil
		}
		return false, fmt.Errorf("failed to start share verification: %w", err)
	}

	// run is nil when the orchestrator is mocked
	if run != nil {
		logger.InfoCtx(ctx, "Share verification enqueued",
			zap.String("shareID", shareID),
			zap.String("workflow_id", run.GetID()),
			zap.String("run_id", run.GetRunID()))
	}
	return true, nil
}
