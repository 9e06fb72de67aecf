package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/beacon/internal/app"
	"github.com/Amund211/beacon/internal/logging"
	"github.com/Amund211/beacon/internal/ratelimiting"
	"github.com/Amund211/beacon/internal/reporting"
)

type recordSessionResponse struct {
	Success bool `json:"success"`
}

func MakeRecordSessionHandler(
	recordSession app.RecordSession,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(8),
		ratelimiting.BurstSize(480),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)
	userIDLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(2),
		ratelimiting.BurstSize(120),
	)
	userIDRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		// NOTE: Rate limiting based on user controlled value
		userIDLimiter,
		ratelimiting.UserIDKeyFunc,
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware(),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("recordsession"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
		NewRateLimitMiddleware(userIDRateLimiter, makeOnLimitExceeded(userIDRateLimiter)),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := r.URL.Query().Get("userId")
		rawLoginTime := r.URL.Query().Get("loginTime")
		rawLogoutTime := r.URL.Query().Get("logoutTime")

		ctx = reporting.SetUserIDInContext(ctx, userID)
		ctx = logging.AddMetaToContext(ctx,
			slog.String("userId", userID),
			slog.String("loginTime", rawLoginTime),
			slog.String("logoutTime", rawLogoutTime),
		)

		if userID == "" || rawLoginTime == "" || rawLogoutTime == "" {
			writeError(ctx, w, "Missing parameters", http.StatusBadRequest)
			return
		}

		loginAt, err := parseTimestamp(rawLoginTime)
		if err != nil {
			writeError(ctx, w, "Invalid loginTime format", http.StatusBadRequest)
			return
		}

		logoutAt, err := parseTimestamp(rawLogoutTime)
		if err != nil {
			writeError(ctx, w, "Invalid logoutTime format", http.StatusBadRequest)
			return
		}

		err = recordSession(ctx, userID, loginAt, logoutAt)
		if err != nil {
			writeDomainError(ctx, w, err)
			return
		}

		logging.FromContext(ctx).Info("Recorded session")

		writeJSON(ctx, w, http.StatusOK, recordSessionResponse{Success: true})
	}

	return middleware(handler)
}
