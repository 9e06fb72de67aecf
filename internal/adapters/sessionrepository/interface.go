package sessionrepository

import (
	"context"

	"github.com/Amund211/beacon/internal/domain"
)

type SessionRepository interface {
	RegisterUser(ctx context.Context, userID, userName string) (domain.User, error)
	RecordSession(ctx context.Context, userID string, session domain.Session) error
	UserSessions(ctx context.Context, userID string) ([]domain.Session, error)
	UserIDs(ctx context.Context) ([]string, error)
}
