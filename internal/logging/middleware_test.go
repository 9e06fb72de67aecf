package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amund211/beacon/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNewRequestLoggerMiddleware(t *testing.T) {
	run := func(t *testing.T, target string, header http.Header) map[string]any {
		t.Helper()

		buf := &bytes.Buffer{}
		middleware := logging.NewRequestLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))

		logRequest := func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("test")
		}

		request := httptest.NewRequest("GET", target, nil)
		for key, values := range header {
			for _, value := range values {
				request.Header.Add(key, value)
			}
		}

		w := httptest.NewRecorder()
		middleware(logRequest)(w, request)

		var logEntry map[string]any
		err := json.Unmarshal(buf.Bytes(), &logEntry)
		require.NoError(t, err)

		return logEntry
	}

	t.Run("userId and userAgent are attached", func(t *testing.T) {
		logEntry := run(t, "/v1/totalActivity?userId=user1", http.Header{
			"User-Agent": []string{"user-agent/1.0"},
		})

		require.Equal(t, "test", logEntry["msg"])
		require.Equal(t, "user1", logEntry["userId"])
		require.Equal(t, "user-agent/1.0", logEntry["userAgent"])
	})

	t.Run("missing values are marked", func(t *testing.T) {
		logEntry := run(t, "/v1/inactiveUsers?days=1", nil)

		require.Equal(t, "<missing>", logEntry["userId"])
		require.Equal(t, "<missing>", logEntry["userAgent"])
	})
}
