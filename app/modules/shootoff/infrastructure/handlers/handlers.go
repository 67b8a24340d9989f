// Package shootoffhandlers maps shoot-off events onto the shoot-off service.
package shootoffhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	shootoffservice "github.com/clay-target-club/claybot/app/modules/shootoff/application"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// ShootOffHandlers holds the shoot-off module's event handlers.
type ShootOffHandlers struct {
	service shootoffservice.Service
	deps    handlerwrapper.Deps
}

// NewShootOffHandlers creates a new ShootOffHandlers.
func NewShootOffHandlers(
	service shootoffservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *ShootOffHandlers {
	return &ShootOffHandlers{
		service: service,
		deps: handlerwrapper.Deps{
			Module:  "shootoff",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Helpers: helpers,
		},
	}
}
