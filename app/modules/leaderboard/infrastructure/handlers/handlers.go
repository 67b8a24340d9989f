// Package leaderboardhandlers maps leaderboard events onto the leaderboard
// service.
package leaderboardhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/clay-target-club/claybot/app/modules/leaderboard/application"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// LeaderboardHandlers holds the leaderboard module's event handlers.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	deps    handlerwrapper.Deps
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers.
func NewLeaderboardHandlers(
	service leaderboardservice.Service,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		service: service,
		deps: handlerwrapper.Deps{
			Module:  "leaderboard",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Helpers: helpers,
		},
	}
}
