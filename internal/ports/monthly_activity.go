package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/beacon/internal/app"
	"github.com/Amund211/beacon/internal/logging"
	"github.com/Amund211/beacon/internal/ratelimiting"
	"github.com/Amund211/beacon/internal/reporting"
)

type monthlyActivityResponse struct {
	Success      bool          `json:"success"`
	UserID       string        `json:"userId"`
	Month        string        `json:"month"`
	DailyMinutes map[int]int64 `json:"dailyMinutes"`
}

func MakeGetMonthlyActivityHandler(
	getMonthlyActivity app.GetMonthlyActivity,
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
		reporting.NewAddMetaMiddleware("monthlyactivity"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
		NewRateLimitMiddleware(userIDRateLimiter, makeOnLimitExceeded(userIDRateLimiter)),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := r.URL.Query().Get("userId")
		month := r.URL.Query().Get("month")

		ctx = reporting.SetUserIDInContext(ctx, userID)
		ctx = logging.AddMetaToContext(ctx,
			slog.String("userId", userID),
			slog.String("month", month),
		)

		if userID == "" || month == "" {
			writeError(ctx, w, "Missing parameters", http.StatusBadRequest)
			return
		}

		dailyMinutes, err := getMonthlyActivity(ctx, userID, month)
		if err != nil {
			writeDomainError(ctx, w, err)
			return
		}

		logging.FromContext(ctx).Info("Returning monthly activity", "days", len(dailyMinutes))

		writeJSON(ctx, w, http.StatusOK, monthlyActivityResponse{
			Success:      true,
			UserID:       userID,
			Month:        month,
			DailyMinutes: dailyMinutes,
		})
	}

	return middleware(handler)
}
