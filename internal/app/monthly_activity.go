package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
	"github.com/Amund211/beacon/internal/domain"
)

type GetMonthlyActivity func(ctx context.Context, userID string, month string) (map[int]int64, error)

// BuildGetMonthlyActivity accumulates minutes per day-of-month for the given
// calendar month ("2006-01"). A session belongs to the month of its login
// timestamp only; a logout spilling into the next month does not split the
// duration. Days without activity are absent from the result.
func BuildGetMonthlyActivity(repo sessionrepository.SessionRepository) GetMonthlyActivity {
	return func(ctx context.Context, userID string, month string) (map[int]int64, error) {
		yearMonth, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, month)
		}

		sessions, err := repo.UserSessions(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get sessions: %w", err)
		}

		dailyMinutes := make(map[int]int64)
		for _, session := range sessions {
			if session.LoginAt.Year() != yearMonth.Year() || session.LoginAt.Month() != yearMonth.Month() {
				continue
			}
			dailyMinutes[session.LoginAt.Day()] += session.DurationMinutes()
		}

		return dailyMinutes, nil
	}
}
