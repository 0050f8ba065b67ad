package usecase

import (
	"context"

	"classping/internal/domain/entity"
)

// AttendanceUsecase computes the aggregated attendance view for one user.
type AttendanceUsecase interface {
	// Snapshot sums class counters across the user's subjects. It never
	// returns an error: a store-read failure degrades to the default
	// snapshot so that one user's data problem cannot block a dispatch
	// run covering many users.
	Snapshot(ctx context.Context, userID string) entity.AttendanceSnapshot
}
