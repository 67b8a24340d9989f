// Package athleterouter wires athlete event topics to their handlers.
package athleterouter

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

	athleteservice "github.com/clay-target-club/claybot/app/modules/athlete/application"
	athleteevents "github.com/clay-target-club/claybot/app/modules/athlete/events"
	athletehandlers "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/handlers"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// AthleteRouter registers the athlete module's handlers on the shared router.
type AthleteRouter struct {
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

// NewAthleteRouter creates a new AthleteRouter.
func NewAthleteRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	helpers utils.Helpers,
	tracer trace.Tracer,
	registry *prometheus.Registry,
) *AthleteRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(registry, "", "")
		metricsBuilder = &builder
	}
	return &AthleteRouter{
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

// Configure adds the athlete middleware stack and registers handlers.
func (r *AthleteRouter) Configure(ctx context.Context, service athleteservice.Service, opMetrics observability.OperationMetrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	handlers := athletehandlers.NewAthleteHandlers(service, r.logger, opMetrics, r.tracer, r.helpers)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		r.middlewareHelper.CommonMetadataMiddleware("athlete"),
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers subscribes each request topic and publishes handler output
// to the topic each result message carries in metadata.
func (r *AthleteRouter) RegisterHandlers(ctx context.Context, handlers *athletehandlers.AthleteHandlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		athleteevents.UpsertRequestedV1: handlers.HandleUpsertRequested(),
		athleteevents.GetRequestedV1:    handlers.HandleGetRequested(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("athlete.%s", topic)
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
func (r *AthleteRouter) Close() error {
	return nil
}
