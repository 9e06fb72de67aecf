package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Amund211/beacon/internal/adapters/sessionrepository"
	"github.com/Amund211/beacon/internal/app"
	"github.com/Amund211/beacon/internal/config"
	"github.com/Amund211/beacon/internal/ports"
	"github.com/Amund211/beacon/internal/reporting"
	"github.com/Amund211/beacon/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "golang.org/x/crypto/x509roots/fallback"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "beacon-activity.com"
const STAGING_DOMAIN_SUFFIX = "beacon-staging.pages.dev"

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	shutdownTelemetry, err := telemetry.SetupOTelSDK(context.Background(), "beacon")
	if err != nil {
		fail("Failed to initialize telemetry", "error", err.Error())
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Error("Failed to shut down telemetry", "error", err.Error())
		}
	}()
	logger.Info("Initialized telemetry")

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	sessionRepo := sessionrepository.NewInMemory()
	logger.Info("Initialized SessionRepository")

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	registerUser := app.BuildRegisterUser(sessionRepo)
	recordSession := app.BuildRecordSession(sessionRepo)
	getUserSessions := app.BuildGetUserSessions(sessionRepo)
	getTotalActivityTime := app.BuildGetTotalActivityTime(sessionRepo)
	getMonthlyActivity := app.BuildGetMonthlyActivity(sessionRepo)
	findInactiveUsers := app.BuildFindInactiveUsers(sessionRepo, time.Now)

	getUserStatus := app.BuildGetUserStatus(getTotalActivityTime)
	getUserLastSessionDate := app.BuildGetUserLastSessionDate(getUserSessions)

	mux := http.NewServeMux()

	mux.HandleFunc(
		"OPTIONS /v1/register",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"POST /v1/register",
		ports.MakeRegisterUserHandler(
			registerUser,
			allowedOrigins,
			logger.With("port", "register"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/recordSession",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"POST /v1/recordSession",
		ports.MakeRecordSessionHandler(
			recordSession,
			allowedOrigins,
			logger.With("port", "recordsession"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/totalActivity",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/totalActivity",
		ports.MakeGetTotalActivityHandler(
			getTotalActivityTime,
			allowedOrigins,
			logger.With("port", "totalactivity"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/monthlyActivity",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/monthlyActivity",
		ports.MakeGetMonthlyActivityHandler(
			getMonthlyActivity,
			allowedOrigins,
			logger.With("port", "monthlyactivity"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/inactiveUsers",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/inactiveUsers",
		ports.MakeFindInactiveUsersHandler(
			findInactiveUsers,
			allowedOrigins,
			logger.With("port", "inactiveusers"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/status",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/status",
		ports.MakeGetUserStatusHandler(
			getUserStatus,
			allowedOrigins,
			logger.With("port", "status"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /v1/lastSessionDate",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /v1/lastSessionDate",
		ports.MakeGetLastSessionDateHandler(
			getUserLastSessionDate,
			allowedOrigins,
			logger.With("port", "lastsessiondate"),
			sentryMiddleware,
		),
	)

	logger.Info("Init complete")
	err = http.ListenAndServe(
		fmt.Sprintf(":%s", config.Port()),
		otelhttp.NewHandler(mux, "beacon"),
	)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
