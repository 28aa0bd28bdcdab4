package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// Workflow loggers are no-ops during history replay, so each entry is written once per execution.

func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	fromWorkflow(ctx).Info(msg, fields...)
}

func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	fromWorkflow(ctx).Warn(msg, fields...)
}

func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	fromWorkflow(ctx).Debug(msg, fields...)
}

func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	fromWorkflow(ctx).Error(errorMessage(err), fields...)
}

func fromWorkflow(ctx workflow.Context) *zap.Logger {
	if workflow.IsReplaying(ctx) {
		return zap.NewNop()
	}
	return log.With(workflowFields(workflow.GetInfo(ctx))...)
}

func workflowFields(info *workflow.Info) []zap.Field {
	if info == nil {
		return nil
	}
	workflowType := info.WorkflowType.Name
	if workflowType == "" {
		workflowType = "unknown"
	}
	return []zap.Field{
		zap.String("workflow_type", workflowType),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.String("run_id", info.WorkflowExecution.RunID),
		zap.String("task_queue", info.TaskQueueName),
		zap.Int32("attempt", info.Attempt),
	}
}
