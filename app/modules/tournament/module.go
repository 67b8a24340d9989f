// Package tournament assembles the tournament module: service, repositories,
// and event router registration.
package tournament

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	tournamentservice "github.com/clay-target-club/claybot/app/modules/tournament/application"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	tournamentrouter "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/router"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Module is the assembled tournament module.
type Module struct {
	EventBus          eventbus.EventBus
	TournamentService tournamentservice.Service
	TournamentRouter  *tournamentrouter.TournamentRouter
	cancelFunc        context.CancelFunc
	obs               observability.Observability
}

// NewTournamentModule wires the tournament service and registers its
// handlers.
func NewTournamentModule(
	ctx context.Context,
	obs observability.Observability,
	repo tournamentdb.Repository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	service := tournamentservice.NewTournamentService(repo, obs.Logger, obs.Metrics, obs.Tracer)

	tournamentRouter := tournamentrouter.NewTournamentRouter(obs.Logger, router, bus, bus, helpers, obs.Tracer, obs.Registry)
	if err := tournamentRouter.Configure(ctx, service, obs.Metrics); err != nil {
		return nil, fmt.Errorf("failed to configure tournament router: %w", err)
	}

	return &Module{
		EventBus:          bus,
		TournamentService: service,
		TournamentRouter:  tournamentRouter,
		obs:               obs,
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
