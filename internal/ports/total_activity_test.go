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

func TestMakeGetTotalActivityHandler(t *testing.T) {
	t.Parallel()

	allowedOrigins, err := ports.NewDomainSuffixes("example.com", "test.com")
	require.NoError(t, err)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noopMiddleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r)
		}
	}

	makeGetTotalActivityTime := func(t *testing.T, expectedUserID string, totalMinutes int64, err error) (app.GetTotalActivityTime, *bool) {
		called := false
		return func(ctx context.Context, userID string) (int64, error) {
			require.Equal(t, expectedUserID, userID)
			called = true
			return totalMinutes, err
		}, &called
	}

	makeHandler := func(getTotalActivityTime app.GetTotalActivityTime) http.HandlerFunc {
		return ports.MakeGetTotalActivityHandler(
			getTotalActivityTime,
			allowedOrigins,
			testLogger,
			noopMiddleware,
		)
	}

	t.Run("successful retrieval", func(t *testing.T) {
		t.Parallel()

		getTotalActivityTime, called := makeGetTotalActivityTime(t, "alice", 135, nil)
		handler := makeHandler(getTotalActivityTime)

		req := httptest.NewRequest("GET", "/v1/totalActivity?userId=alice", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"userId":"alice","totalMinutes":135}`, w.Body.String())
		require.True(t, *called)
	})

	t.Run("zero minutes for user with no sessions", func(t *testing.T) {
		t.Parallel()

		getTotalActivityTime, called := makeGetTotalActivityTime(t, "bob", 0, nil)
		handler := makeHandler(getTotalActivityTime)

		req := httptest.NewRequest("GET", "/v1/totalActivity?userId=bob", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"userId":"bob","totalMinutes":0}`, w.Body.String())
		require.True(t, *called)
	})

	t.Run("missing userId", func(t *testing.T) {
		t.Parallel()

		getTotalActivityTime, called := makeGetTotalActivityTime(t, "", 0, nil)
		handler := makeHandler(getTotalActivityTime)

		req := httptest.NewRequest("GET", "/v1/totalActivity", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Missing userId")
		require.False(t, *called)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		getTotalActivityTime, called := makeGetTotalActivityTime(t, "ghost", 0, domain.ErrUserNotFound)
		handler := makeHandler(getTotalActivityTime)

		req := httptest.NewRequest("GET", "/v1/totalActivity?userId=ghost", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "User not found")
		require.True(t, *called)
	})
}
