package temporal

import (
	"context"
	"errors"
	"strconv"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
	sdktemporal "go.temporal.io/sdk/temporal"
)

// NewSentryActivityInterceptor gives every activity execution its own Sentry hub
// tagged with the activity and workflow it belongs to. Non-retryable activity
// errors are captured on that hub.
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &sentryWorkerInterceptor{}
}

type sentryWorkerInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (s *sentryWorkerInterceptor) InterceptActivity(_ context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	i := &sentryActivityInterceptor{}
	i.Next = next
	return i
}

type sentryActivityInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

func (s *sentryActivityInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	info := activity.GetInfo(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(activityTags(info))
	})

	result, err := s.Next.ExecuteActivity(sentry.SetHubOnContext(ctx, hub), in)
	if nonRetryable(err) {
		hub.CaptureException(err)
	}
	return result, err
}

func activityTags(info activity.Info) map[string]string {
	tags := map[string]string{
		"activity_type": info.ActivityType.Name,
		"workflow_id":   info.WorkflowExecution.ID,
		"task_queue":    info.TaskQueue,
		"attempt":       strconv.Itoa(int(info.Attempt)),
	}
	if info.WorkflowType != nil {
		tags["workflow_type"] = info.WorkflowType.Name
	}
	return tags
}

func nonRetryable(err error) bool {
	var appErr *sdktemporal.ApplicationError
	return errors.As(err, &appErr) && appErr.NonRetryable()
}
