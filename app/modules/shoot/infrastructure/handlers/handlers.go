// Package shoothandlers maps shoot events onto the shoot service.
package shoothandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	shootservice "github.com/clay-target-club/claybot/app/modules/shoot/application"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// ShootHandlers holds the shoot module's event handlers.
type ShootHandlers struct {
	service shootservice.Service
	deps    handlerwrapper.Deps
}

// NewShootHandlers creates a new ShootHandlers.
func NewShootHandlers(
	service shootservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *ShootHandlers {
	return &ShootHandlers{
		service: service,
		deps: handlerwrapper.Deps{
			Module:  "shoot",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Helpers: helpers,
		},
	}
}
