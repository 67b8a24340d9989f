// Package shoot assembles the shoot module: service, repositories, and event
// router registration.
package shoot

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	shootservice "github.com/clay-target-club/claybot/app/modules/shoot/application"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	shootrouter "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/router"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	"github.com/clay-target-club/claybot/config"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Module is the assembled shoot module.
type Module struct {
	EventBus     eventbus.EventBus
	ShootService shootservice.Service
	ShootRouter  *shootrouter.ShootRouter
	cancelFunc   context.CancelFunc
	obs          observability.Observability
}

// NewShootModule wires the shoot service and registers its handlers.
func NewShootModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	repo shootdb.Repository,
	tournaments tournamentdb.Repository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	service := shootservice.NewShootService(
		repo,
		tournaments,
		obs.Logger,
		obs.Metrics,
		obs.Tracer,
		cfg.Import.RatePerMinute,
		int(cfg.Import.MaxSheetBytes),
	)

	shootRouter := shootrouter.NewShootRouter(obs.Logger, router, bus, bus, helpers, obs.Tracer, obs.Registry)
	if err := shootRouter.Configure(ctx, service, obs.Metrics); err != nil {
		return nil, fmt.Errorf("failed to configure shoot router: %w", err)
	}

	return &Module{
		EventBus:     bus,
		ShootService: service,
		ShootRouter:  shootRouter,
		obs:          obs,
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
