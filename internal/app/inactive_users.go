package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
	"github.com/Amund211/beacon/internal/domain"
)

type FindInactiveUsers func(ctx context.Context, days int) ([]string, error)

// BuildFindInactiveUsers lists users with no sessions at all, or whose most
// recent logout is strictly before now minus the given number of days.
// With days = 0 the cutoff is the current instant, so only users with a
// session ending at or after "now" are excluded.
func BuildFindInactiveUsers(repo sessionrepository.SessionRepository, nowFunc func() time.Time) FindInactiveUsers {
	return func(ctx context.Context, days int) ([]string, error) {
		if days < 0 {
			return nil, fmt.Errorf("%w: days must be non-negative, got %d", domain.ErrInvalidArgument, days)
		}

		cutoff := nowFunc().AddDate(0, 0, -days)

		userIDs, err := repo.UserIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}

		// Registration order keeps the result deterministic
		inactive := []string{}
		for _, userID := range userIDs {
			sessions, err := repo.UserSessions(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to get sessions: %w", err)
			}

			latest, found := domain.LatestLogout(sessions)
			if !found || latest.LogoutAt.Before(cutoff) {
				inactive = append(inactive, userID)
			}
		}

		return inactive, nil
	}
}
