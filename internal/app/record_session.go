package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
	"github.com/Amund211/beacon/internal/domain"
)

type RecordSession func(ctx context.Context, userID string, loginAt, logoutAt time.Time) error

// BuildRecordSession appends a session to the user's history.
// Returns domain.ErrInvalidTimeRange for zero-length or inverted intervals
// (nothing is stored) and domain.ErrUserNotFound for unregistered ids.
func BuildRecordSession(repo sessionrepository.SessionRepository) RecordSession {
	return func(ctx context.Context, userID string, loginAt, logoutAt time.Time) error {
		session, err := domain.NewSession(loginAt, logoutAt)
		if err != nil {
			return err
		}

		err = repo.RecordSession(ctx, userID, session)
		if err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}

		return nil
	}
}
