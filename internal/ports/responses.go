package ports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Amund211/beacon/internal/domain"
	"github.com/Amund211/beacon/internal/reporting"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, payload any) {
	marshalled, err := json.Marshal(payload)
	if err != nil {
		reporting.Report(ctx, fmt.Errorf("failed to marshal response: %w", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"cause":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(marshalled)
}

func writeError(ctx context.Context, w http.ResponseWriter, cause string, statusCode int) {
	writeJSON(ctx, w, statusCode, errorResponse{Success: false, Cause: cause})
}

// writeDomainError maps the core's error kinds to status codes: user input
// rejected by a business rule gets a 4xx distinct from bad-request parsing
// failures, which the ports handle before calling the core.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(ctx, w, "User not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateUser):
		writeError(ctx, w, "User already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidTimeRange):
		writeError(ctx, w, "Incorrect time ranges", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidMonth):
		writeError(ctx, w, "Invalid month format", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(ctx, w, "Invalid number format for days", http.StatusBadRequest)
	default:
		reporting.Report(ctx, fmt.Errorf("unexpected error from core: %w", err))
		writeError(ctx, w, "Internal server error", http.StatusInternalServerError)
	}
}

// Timestamps are accepted with or without a zone offset. The offset-less
// form is interpreted as UTC.
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
