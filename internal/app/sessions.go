package app

import (
	"context"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
	"github.com/Amund211/beacon/internal/domain"
)

type GetUserSessions func(ctx context.Context, userID string) ([]domain.Session, error)

// BuildGetUserSessions returns the user's sessions in insertion order.
func BuildGetUserSessions(repo sessionrepository.SessionRepository) GetUserSessions {
	return func(ctx context.Context, userID string) ([]domain.Session, error) {
		return repo.UserSessions(ctx, userID)
	}
}
