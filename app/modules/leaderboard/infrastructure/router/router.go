// Package leaderboardrouter wires leaderboard event topics to their handlers.
package leaderboardrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/clay-target-club/claybot/app/modules/leaderboard/application"
	leaderboardevents "github.com/clay-target-club/claybot/app/modules/leaderboard/events"
	leaderboardhandlers "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/handlers"
	shootevents "github.com/clay-target-club/claybot/app/modules/shoot/events"
	shootoffevents "github.com/clay-target-club/claybot/app/modules/shootoff/events"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// LeaderboardRouter registers the leaderboard module's handlers on the shared
// router.
type LeaderboardRouter struct {
	logger           *slog.Logger
	Router           *message.Router
	subscriber       eventbus.EventBus
	publisher        eventbus.EventBus
	helpers          utils.Helpers
	tracer           trace.Tracer
	middlewareHelper utils.MiddlewareHelpers
	metricsBuilder   *metrics.PrometheusMetricsBuilder
	metricsEnabled   bool
}

// NewLeaderboardRouter creates a new LeaderboardRouter.
func NewLeaderboardRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	helpers utils.Helpers,
	tracer trace.Tracer,
	registry *prometheus.Registry,
) *LeaderboardRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(registry, "", "")
		metricsBuilder = &builder
	}
	return &LeaderboardRouter{
		logger:           logger,
		Router:           router,
		subscriber:       subscriber,
		publisher:        publisher,
		helpers:          helpers,
		tracer:           tracer,
		middlewareHelper: utils.NewMiddlewareHelper(),
		metricsBuilder:   metricsBuilder,
		metricsEnabled:   registry != nil && !inTestEnv,
	}
}

// Configure adds the leaderboard middleware stack and registers handlers.
func (r *LeaderboardRouter) Configure(ctx context.Context, service leaderboardservice.Service, opMetrics observability.OperationMetrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, r.logger, opMetrics, r.tracer, r.helpers)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		r.middlewareHelper.CommonMetadataMiddleware("leaderboard"),
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers subscribes each topic and publishes handler output to the
// topic each result message carries in metadata. Logged shoots and completed
// shoot-offs are subscribed too: both refresh the standings.
func (r *LeaderboardRouter) RegisterHandlers(ctx context.Context, handlers *leaderboardhandlers.LeaderboardHandlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		leaderboardevents.StandingsRebuildRequestedV1: handlers.HandleStandingsRebuildRequested(),
		leaderboardevents.TieDetectRequestedV1:        handlers.HandleTieDetectRequested(),
		leaderboardevents.ExportRequestedV1:           handlers.HandleExportRequested(),
		shootevents.ScoresLoggedV1:                    handlers.HandleScoresLogged(),
		shootoffevents.WinnerDeclaredV1:               handlers.HandleShootOffWinnerDeclared(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("leaderboard.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.subscriber,
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message",
						attr.String("message_id", msg.UUID),
						attr.Error(err),
					)
					return nil, err
				}
				for _, m := range messages {
					publishTopic := m.Metadata.Get("topic")
					if publishTopic == "" {
						r.logger.Error("Result message missing topic metadata, dropping",
							attr.String("handler", handlerName),
							attr.String("message_id", m.UUID),
						)
						continue
					}
					if err := r.publisher.Publish(publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

// Close is a no-op; the shared router owns the run lifecycle.
func (r *LeaderboardRouter) Close() error {
	return nil
}
