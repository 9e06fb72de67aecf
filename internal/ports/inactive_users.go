package ports

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Amund211/beacon/internal/app"
	"github.com/Amund211/beacon/internal/logging"
	"github.com/Amund211/beacon/internal/ratelimiting"
	"github.com/Amund211/beacon/internal/reporting"
)

type inactiveUsersResponse struct {
	Success bool     `json:"success"`
	Days    int      `json:"days"`
	UserIDs []string `json:"userIds"`
}

func MakeFindInactiveUsersHandler(
	findInactiveUsers app.FindInactiveUsers,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware(),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("inactiveusers"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rawDays := r.URL.Query().Get("days")

		ctx = logging.AddMetaToContext(ctx, slog.String("days", rawDays))

		if rawDays == "" {
			writeError(ctx, w, "Missing days parameter", http.StatusBadRequest)
			return
		}

		days, err := strconv.Atoi(rawDays)
		if err != nil {
			writeError(ctx, w, "Invalid number format for days", http.StatusBadRequest)
			return
		}

		userIDs, err := findInactiveUsers(ctx, days)
		if err != nil {
			writeDomainError(ctx, w, err)
			return
		}

		logging.FromContext(ctx).Info("Returning inactive users", "count", len(userIDs))

		writeJSON(ctx, w, http.StatusOK, inactiveUsersResponse{
			Success: true,
			Days:    days,
			UserIDs: userIDs,
		})
	}

	return middleware(handler)
}
