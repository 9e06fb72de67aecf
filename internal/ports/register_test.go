package ports_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amund211/beacon/internal/app"
	"github.com/Amund211/beacon/internal/domain"
	"github.com/Amund211/beacon/internal/ports"
	"github.com/stretchr/testify/require"
)

func TestMakeRegisterUserHandler(t *testing.T) {
	t.Parallel()

	allowedOrigins, err := ports.NewDomainSuffixes("example.com", "test.com")
	require.NoError(t, err)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noopMiddleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r)
		}
	}

	makeRegisterUser := func(t *testing.T, expectedUserID, expectedUserName string, err error) (app.RegisterUser, *bool) {
		called := false
		return func(ctx context.Context, userID, userName string) (domain.User, error) {
			require.Equal(t, expectedUserID, userID)
			require.Equal(t, expectedUserName, userName)
			called = true
			if err != nil {
				return domain.User{}, err
			}
			return domain.User{UserID: userID, UserName: userName}, nil
		}, &called
	}

	makeHandler := func(registerUser app.RegisterUser) http.HandlerFunc {
		return ports.MakeRegisterUserHandler(
			registerUser,
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)
	}

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		registerUser, called := makeRegisterUser(t, "alice", "Alice", nil)
		handler := makeHandler(registerUser)

		req := httptest.NewRequest("POST", "/v1/register?userId=alice&userName=Alice", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"userId":"alice","userName":"Alice"}`, w.Body.String())
		require.True(t, *called)
	})

	t.Run("missing userId", func(t *testing.T) {
		t.Parallel()

		registerUser, called := makeRegisterUser(t, "", "", nil)
		handler := makeHandler(registerUser)

		req := httptest.NewRequest("POST", "/v1/register?userName=Alice", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Missing parameters")
		require.False(t, *called)
	})

	t.Run("missing userName", func(t *testing.T) {
		t.Parallel()

		registerUser, called := makeRegisterUser(t, "", "", nil)
		handler := makeHandler(registerUser)

		req := httptest.NewRequest("POST", "/v1/register?userId=alice", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Missing parameters")
		require.False(t, *called)
	})

	t.Run("duplicate user", func(t *testing.T) {
		t.Parallel()

		registerUser, called := makeRegisterUser(t, "alice", "Alice", domain.ErrDuplicateUser)
		handler := makeHandler(registerUser)

		req := httptest.NewRequest("POST", "/v1/register?userId=alice&userName=Alice", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, w.Body.String(), "User already registered")
		require.True(t, *called)
	})
}
