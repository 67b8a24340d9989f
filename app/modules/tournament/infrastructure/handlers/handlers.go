// Package tournamenthandlers maps tournament events onto the tournament
// service.
package tournamenthandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	tournamentservice "github.com/clay-target-club/claybot/app/modules/tournament/application"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// TournamentHandlers holds the tournament module's event handlers.
type TournamentHandlers struct {
	service tournamentservice.Service
	deps    handlerwrapper.Deps
}

// NewTournamentHandlers creates a new TournamentHandlers.
func NewTournamentHandlers(
	service tournamentservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *TournamentHandlers {
	return &TournamentHandlers{
		service: service,
		deps: handlerwrapper.Deps{
			Module:  "tournament",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Helpers: helpers,
		},
	}
}
