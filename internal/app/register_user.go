package app

import (
	"context"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
	"github.com/Amund211/beacon/internal/domain"
)

type RegisterUser func(ctx context.Context, userID, userName string) (domain.User, error)

// BuildRegisterUser creates a user with an empty session list.
// Returns domain.ErrDuplicateUser if the id is already registered; the
// original registration is untouched in that case.
func BuildRegisterUser(repo sessionrepository.SessionRepository) RegisterUser {
	return func(ctx context.Context, userID, userName string) (domain.User, error) {
		return repo.RegisterUser(ctx, userID, userName)
	}
}
