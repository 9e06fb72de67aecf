package sessionrepository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Amund211/beacon/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// InMemory keeps the user registry and all recorded sessions in process
// memory. Registration is an atomic check-and-insert under the registry
// lock. Each user's session list has its own lock, so appends for one user
// are serialized while different users can be mutated in parallel.
type InMemory struct {
	tracer trace.Tracer

	mutex sync.RWMutex
	users map[string]*userRecord
	// User ids in registration order, for deterministic enumeration
	order []string
}

type userRecord struct {
	user domain.User

	mutex    sync.Mutex
	sessions []domain.Session
}

func NewInMemory() *InMemory {
	tracer := otel.Tracer("beacon/sessionrepository/inmemory")
	return &InMemory{
		tracer: tracer,
		users:  make(map[string]*userRecord),
	}
}

func (r *InMemory) RegisterUser(ctx context.Context, userID, userName string) (domain.User, error) {
	_, span := r.tracer.Start(ctx, "InMemory.RegisterUser")
	defer span.End()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[userID]; exists {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrDuplicateUser, userID)
	}

	user := domain.User{UserID: userID, UserName: userName}
	r.users[userID] = &userRecord{user: user}
	r.order = append(r.order, userID)

	return user, nil
}

func (r *InMemory) RecordSession(ctx context.Context, userID string, session domain.Session) error {
	_, span := r.tracer.Start(ctx, "InMemory.RecordSession")
	defer span.End()

	record, err := r.record(userID)
	if err != nil {
		return err
	}

	record.mutex.Lock()
	defer record.mutex.Unlock()

	record.sessions = append(record.sessions, session)

	return nil
}

func (r *InMemory) UserSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	_, span := r.tracer.Start(ctx, "InMemory.UserSessions")
	defer span.End()

	record, err := r.record(userID)
	if err != nil {
		return nil, err
	}

	record.mutex.Lock()
	defer record.mutex.Unlock()

	// Snapshot in insertion order so callers never observe later appends
	return slices.Clone(record.sessions), nil
}

func (r *InMemory) UserIDs(ctx context.Context) ([]string, error) {
	_, span := r.tracer.Start(ctx, "InMemory.UserIDs")
	defer span.End()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return slices.Clone(r.order), nil
}

func (r *InMemory) record(userID string) (*userRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	record, exists := r.users[userID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return record, nil
}
