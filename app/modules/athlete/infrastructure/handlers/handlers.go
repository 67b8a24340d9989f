// Package athletehandlers maps athlete events onto the athlete service.
package athletehandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	athleteservice "github.com/clay-target-club/claybot/app/modules/athlete/application"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// AthleteHandlers holds the athlete module's event handlers.
type AthleteHandlers struct {
	service athleteservice.Service
	deps    handlerwrapper.Deps
}

// NewAthleteHandlers creates a new AthleteHandlers.
func NewAthleteHandlers(
	service athleteservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *AthleteHandlers {
	return &AthleteHandlers{
		service: service,
		deps: handlerwrapper.Deps{
			Module:  "athlete",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Helpers: helpers,
		},
	}
}
