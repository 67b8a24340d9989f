// Package statshandlers maps stats events onto the stats service.
package statshandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	statsservice "github.com/clay-target-club/claybot/app/modules/stats/application"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// StatsHandlers holds the stats module's event handlers.
type StatsHandlers struct {
	service statsservice.Service
	deps    handlerwrapper.Deps
}

// NewStatsHandlers creates a new StatsHandlers.
func NewStatsHandlers(
	service statsservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *StatsHandlers {
	return &StatsHandlers{
		service: service,
		deps: handlerwrapper.Deps{
			Module:  "stats",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Helpers: helpers,
		},
	}
}
