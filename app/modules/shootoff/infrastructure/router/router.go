// Package shootoffrouter wires shoot-off event topics to their handlers.
package shootoffrouter

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

	shootoffservice "github.com/clay-target-club/claybot/app/modules/shootoff/application"
	shootoffevents "github.com/clay-target-club/claybot/app/modules/shootoff/events"
	shootoffhandlers "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/handlers"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// ShootOffRouter registers the shoot-off module's handlers on the shared
// router.
type ShootOffRouter struct {
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

// NewShootOffRouter creates a new ShootOffRouter.
func NewShootOffRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	helpers utils.Helpers,
	tracer trace.Tracer,
	registry *prometheus.Registry,
) *ShootOffRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(registry, "", "")
		metricsBuilder = &builder
	}
	return &ShootOffRouter{
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

// Configure adds the shoot-off middleware stack and registers handlers.
func (r *ShootOffRouter) Configure(ctx context.Context, service shootoffservice.Service, opMetrics observability.OperationMetrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	handlers := shootoffhandlers.NewShootOffHandlers(service, r.logger, opMetrics, r.tracer, r.helpers)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		r.middlewareHelper.CommonMetadataMiddleware("shootoff"),
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers subscribes each request topic and publishes handler output
// to the topic each result message carries in metadata.
func (r *ShootOffRouter) RegisterHandlers(ctx context.Context, handlers *shootoffhandlers.ShootOffHandlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		shootoffevents.CreateRequestedV1:            handlers.HandleCreateRequested(),
		shootoffevents.StartRequestedV1:             handlers.HandleStartRequested(),
		shootoffevents.RoundCreateRequestedV1:       handlers.HandleRoundCreateRequested(),
		shootoffevents.RoundScoresSubmitRequestedV1: handlers.HandleRoundScoresSubmitRequested(),
		shootoffevents.WinnerDeclareRequestedV1:     handlers.HandleWinnerDeclareRequested(),
		shootoffevents.CancelRequestedV1:            handlers.HandleCancelRequested(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("shootoff.%s", topic)
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
func (r *ShootOffRouter) Close() error {
	return nil
}
