// Package shootoff assembles the shoot-off module: service, repositories, and
// event router registration.
package shootoff

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootoffservice "github.com/clay-target-club/claybot/app/modules/shootoff/application"
	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
	shootoffrouter "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/router"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	"github.com/clay-target-club/claybot/config"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Module is the assembled shoot-off module.
type Module struct {
	EventBus        eventbus.EventBus
	ShootOffService shootoffservice.Service
	ShootOffRouter  *shootoffrouter.ShootOffRouter
	cancelFunc      context.CancelFunc
	obs             observability.Observability
}

// NewShootOffModule wires the shoot-off service and registers its handlers.
// The *bun.DB is needed directly: mutating operations run in transactions
// with row locks.
func NewShootOffModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	tournaments tournamentdb.Repository,
	athletes athletedb.Repository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	service := shootoffservice.NewShootOffService(
		db,
		db,
		shootoffdb.ShootOffDBImpl{},
		tournaments,
		athletes,
		obs.Logger,
		obs.Metrics,
		obs.Tracer,
	)

	shootOffRouter := shootoffrouter.NewShootOffRouter(obs.Logger, router, bus, bus, helpers, obs.Tracer, obs.Registry)
	if err := shootOffRouter.Configure(ctx, service, obs.Metrics); err != nil {
		return nil, fmt.Errorf("failed to configure shoot-off router: %w", err)
	}

	return &Module{
		EventBus:        bus,
		ShootOffService: service,
		ShootOffRouter:  shootOffRouter,
		obs:             obs,
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
