package app_test

import (
	"context"
	"testing"

	"github.com/Amund211/beacon/internal/domain"
	"github.com/stretchr/testify/require"
)

// mockSessionRepository fails the test if a method without a configured
// implementation is called.
type mockSessionRepository struct {
	t *testing.T

	registerUser  func(ctx context.Context, userID, userName string) (domain.User, error)
	recordSession func(ctx context.Context, userID string, session domain.Session) error
	userSessions  func(ctx context.Context, userID string) ([]domain.Session, error)
	userIDs       func(ctx context.Context) ([]string, error)
}

func (m *mockSessionRepository) RegisterUser(ctx context.Context, userID, userName string) (domain.User, error) {
	m.t.Helper()
	require.NotNil(m.t, m.registerUser, "unexpected call to RegisterUser")
	return m.registerUser(ctx, userID, userName)
}

func (m *mockSessionRepository) RecordSession(ctx context.Context, userID string, session domain.Session) error {
	m.t.Helper()
	require.NotNil(m.t, m.recordSession, "unexpected call to RecordSession")
	return m.recordSession(ctx, userID, session)
}

func (m *mockSessionRepository) UserSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	m.t.Helper()
	require.NotNil(m.t, m.userSessions, "unexpected call to UserSessions")
	return m.userSessions(ctx, userID)
}

func (m *mockSessionRepository) UserIDs(ctx context.Context) ([]string, error) {
	m.t.Helper()
	require.NotNil(m.t, m.userIDs, "unexpected call to UserIDs")
	return m.userIDs(ctx)
}
