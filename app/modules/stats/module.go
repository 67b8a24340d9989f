// Package stats assembles the stats module.
package stats

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	statsservice "github.com/clay-target-club/claybot/app/modules/stats/application"
	statsrouter "github.com/clay-target-club/claybot/app/modules/stats/infrastructure/router"
	"github.com/clay-target-club/claybot/config"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Module is the assembled stats module.
type Module struct {
	EventBus     eventbus.EventBus
	StatsService statsservice.Service
	StatsRouter  *statsrouter.StatsRouter
	cancelFunc   context.CancelFunc
	obs          observability.Observability
}

// NewStatsModule wires the stats service and registers its handlers.
func NewStatsModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	shoots shootdb.Repository,
	athletes athletedb.Repository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	service := statsservice.NewStatsService(shoots, athletes, obs.Logger, obs.Metrics, obs.Tracer)

	statsRouter := statsrouter.NewStatsRouter(obs.Logger, router, bus, bus, helpers, obs.Tracer, obs.Registry)
	if err := statsRouter.Configure(ctx, service, obs.Metrics); err != nil {
		return nil, fmt.Errorf("failed to configure stats router: %w", err)
	}

	return &Module{
		EventBus:     bus,
		StatsService: service,
		StatsRouter:  statsRouter,
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
