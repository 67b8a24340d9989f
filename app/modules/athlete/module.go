// Package athlete assembles the athlete module: service, repositories, and
// event router registration.
package athlete

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	athleteservice "github.com/clay-target-club/claybot/app/modules/athlete/application"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	athleterouter "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/router"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Module is the assembled athlete module.
type Module struct {
	EventBus       eventbus.EventBus
	AthleteService athleteservice.Service
	AthleteRouter  *athleterouter.AthleteRouter
	cancelFunc     context.CancelFunc
	obs            observability.Observability
}

// NewAthleteModule wires the athlete service and registers its handlers.
func NewAthleteModule(
	ctx context.Context,
	obs observability.Observability,
	repo athletedb.Repository,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
) (*Module, error) {
	service := athleteservice.NewAthleteService(repo, obs.Logger, obs.Metrics, obs.Tracer)

	athleteRouter := athleterouter.NewAthleteRouter(obs.Logger, router, bus, bus, helpers, obs.Tracer, obs.Registry)
	if err := athleteRouter.Configure(ctx, service, obs.Metrics); err != nil {
		return nil, fmt.Errorf("failed to configure athlete router: %w", err)
	}

	return &Module{
		EventBus:       bus,
		AthleteService: service,
		AthleteRouter:  athleteRouter,
		obs:            obs,
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
