package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/beacon/internal/app"
	"github.com/Amund211/beacon/internal/logging"
	"github.com/Amund211/beacon/internal/ratelimiting"
	"github.com/Amund211/beacon/internal/reporting"
)

type lastSessionDateResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	// nil when the user has no concluded sessions
	LastSessionDate *string `json:"lastSessionDate"`
}

func MakeGetLastSessionDateHandler(
	getUserLastSessionDate app.GetUserLastSessionDate,
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
		reporting.NewAddMetaMiddleware("lastsessiondate"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
		NewRateLimitMiddleware(userIDRateLimiter, makeOnLimitExceeded(userIDRateLimiter)),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := r.URL.Query().Get("userId")

		ctx = reporting.SetUserIDInContext(ctx, userID)
		ctx = logging.AddMetaToContext(ctx, slog.String("userId", userID))

		if userID == "" {
			writeError(ctx, w, "Missing userId", http.StatusBadRequest)
			return
		}

		date, err := getUserLastSessionDate(ctx, userID)
		if err != nil {
			writeDomainError(ctx, w, err)
			return
		}

		var formatted *string
		if date != nil {
			value := date.Format("2006-01-02")
			formatted = &value
		}

		logging.FromContext(ctx).Info("Returning last session date")

		writeJSON(ctx, w, http.StatusOK, lastSessionDateResponse{
			Success:         true,
			UserID:          userID,
			LastSessionDate: formatted,
		})
	}

	return middleware(handler)
}
