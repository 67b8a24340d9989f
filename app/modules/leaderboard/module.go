// Package leaderboard assembles the leaderboard module: service,
// repositories, and event router registration.
package leaderboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	leaderboardservice "github.com/clay-target-club/claybot/app/modules/leaderboard/application"
	leaderboardadapters "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/adapters"
	leaderboarddb "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/repositories"
	leaderboardrouter "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/router"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Module is the assembled leaderboard module.
type Module struct {
	EventBus           eventbus.EventBus
	LeaderboardService leaderboardservice.Service
	LeaderboardRouter  *leaderboardrouter.LeaderboardRouter
	cancelFunc         context.CancelFunc
	obs                observability.Observability
}

// NewLeaderboardModule wires the leaderboard service and registers its
// handlers. Tie suppression reads the shoot-off store through an adapter, so
// the two modules share data without sharing services.
func NewLeaderboardModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	shoots shootdb.Repository,
	tournaments tournamentdb.Repository,
	athletes athletedb.Repository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	service := leaderboardservice.NewLeaderboardService(
		&leaderboarddb.LeaderboardDBImpl{DB: db},
		shoots,
		tournaments,
		athletes,
		leaderboardadapters.NewShootOffLookup(db, shootoffdb.ShootOffDBImpl{}),
		obs.Logger,
		obs.Metrics,
		obs.Tracer,
	)

	leaderboardRouter := leaderboardrouter.NewLeaderboardRouter(obs.Logger, router, bus, bus, helpers, obs.Tracer, obs.Registry)
	if err := leaderboardRouter.Configure(ctx, service, obs.Metrics); err != nil {
		return nil, fmt.Errorf("failed to configure leaderboard router: %w", err)
	}

	return &Module{
		EventBus:           bus,
		LeaderboardService: service,
		LeaderboardRouter:  leaderboardRouter,
		obs:                obs,
	}, nil
}

// Run blocks until the context is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
