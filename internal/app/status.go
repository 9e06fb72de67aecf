package app

import (
	"context"
	"time"

	"github.com/Amund211/beacon/internal/domain"
)

type GetUserStatus func(ctx context.Context, userID string) (domain.ActivityTier, error)

// BuildGetUserStatus classifies the user's total activity time into a tier.
// Store errors are passed through unchanged.
func BuildGetUserStatus(getTotalActivityTime GetTotalActivityTime) GetUserStatus {
	return func(ctx context.Context, userID string) (domain.ActivityTier, error) {
		totalMinutes, err := getTotalActivityTime(ctx, userID)
		if err != nil {
			return "", err
		}

		return domain.TierForMinutes(totalMinutes), nil
	}
}

type GetUserLastSessionDate func(ctx context.Context, userID string) (*time.Time, error)

// BuildGetUserLastSessionDate returns the date of the user's most recent
// logout, ignoring sessions that have not concluded. Returns nil when the
// user has no concluded sessions. Store errors are passed through unchanged.
func BuildGetUserLastSessionDate(getUserSessions GetUserSessions) GetUserLastSessionDate {
	return func(ctx context.Context, userID string) (*time.Time, error) {
		sessions, err := getUserSessions(ctx, userID)
		if err != nil {
			return nil, err
		}

		latest, found := domain.LatestLogout(sessions)
		if !found {
			return nil, nil
		}

		logoutAt := latest.LogoutAt
		date := time.Date(logoutAt.Year(), logoutAt.Month(), logoutAt.Day(), 0, 0, 0, 0, logoutAt.Location())
		return &date, nil
	}
}
