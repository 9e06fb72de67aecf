package app

import (
	"context"
	"fmt"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
)

type GetTotalActivityTime func(ctx context.Context, userID string) (int64, error)

// BuildGetTotalActivityTime sums the user's session durations in minutes.
// Each session's duration is truncated to whole minutes before summing, so
// sub-minute remainders never accumulate across sessions.
func BuildGetTotalActivityTime(repo sessionrepository.SessionRepository) GetTotalActivityTime {
	return func(ctx context.Context, userID string) (int64, error) {
		sessions, err := repo.UserSessions(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to get sessions: %w", err)
		}

		var totalMinutes int64
		for _, session := range sessions {
			totalMinutes += session.DurationMinutes()
		}

		return totalMinutes, nil
	}
}
