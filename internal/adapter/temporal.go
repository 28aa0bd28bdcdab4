package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// Activity exposes activity execution details to enable mocking
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	// Attempt returns the current attempt number of the running activity (1-based)
	Attempt(ctx context.Context) int32
}

// RealActivity implements Activity using the standard activity package
type RealActivity struct{}

// NewActivity creates a new real activity implementation
func NewActivity() Activity {
	return &RealActivity{}
}

// Attempt returns the current attempt number, or 1 outside an activity
func (a *RealActivity) Attempt(ctx context.Context) int32 {
	if !activity.IsActivity(ctx) {
		return 1
	}
	return activity.GetInfo(ctx).Attempt
}
