// Package app assembles the service: database, event bus, observability,
// and every domain module on a single watermill router.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/clay-target-club/claybot/app/modules/athlete"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	"github.com/clay-target-club/claybot/app/modules/leaderboard"
	"github.com/clay-target-club/claybot/app/modules/shoot"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	"github.com/clay-target-club/claybot/app/modules/shootoff"
	"github.com/clay-target-club/claybot/app/modules/stats"
	"github.com/clay-target-club/claybot/app/modules/tournament"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	"github.com/clay-target-club/claybot/config"
	"github.com/clay-target-club/claybot/internal/db/bundb"
	"github.com/clay-target-club/claybot/internal/eventbus"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/utils"
)

// App owns the shared infrastructure and the assembled modules.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Router        *message.Router
	MetricsServer *observability.Server

	AthleteModule     *athlete.Module
	TournamentModule  *tournament.Module
	ShootModule       *shoot.Module
	StatsModule       *stats.Module
	LeaderboardModule *leaderboard.Module
	ShootOffModule    *shootoff.Module

	helpers utils.Helpers
}

// Initialize builds every shared dependency and wires the modules. Nothing
// starts consuming until Run.
func (a *App) Initialize(ctx context.Context, cfg *config.Config, version string) error {
	a.Config = cfg
	a.helpers = utils.NewHelpers()

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:    "claybot",
		Environment:    cfg.Observability.Environment,
		Version:        version,
		MetricsAddress: cfg.Observability.MetricsAddress,
		OTLPEndpoint:   cfg.Observability.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.OTLPInsecure,
		SampleRate:     cfg.Observability.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	a.Observability = obs
	a.MetricsServer = observability.NewServer(cfg.Observability.MetricsAddress, obs)

	db, err := bundb.NewDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, obs.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	a.EventBus = bus

	if err := eventbus.CreateStreams(ctx, bus); err != nil {
		return fmt.Errorf("failed to create streams: %w", err)
	}

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(obs.Logger))
	if err != nil {
		return fmt.Errorf("failed to create watermill router: %w", err)
	}
	a.Router = router

	athleteRepo := &athletedb.AthleteDBImpl{DB: db}
	tournamentRepo := &tournamentdb.TournamentDBImpl{DB: db}
	shootRepo := &shootdb.ShootDBImpl{DB: db}

	a.AthleteModule, err = athlete.NewAthleteModule(ctx, *obs, athleteRepo, bus, router, a.helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize athlete module: %w", err)
	}

	a.TournamentModule, err = tournament.NewTournamentModule(ctx, *obs, tournamentRepo, bus, router, a.helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize tournament module: %w", err)
	}

	a.ShootModule, err = shoot.NewShootModule(ctx, cfg, *obs, shootRepo, tournamentRepo, bus, router, a.helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize shoot module: %w", err)
	}

	a.StatsModule, err = stats.NewStatsModule(ctx, cfg, *obs, shootRepo, athleteRepo, bus, router, a.helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize stats module: %w", err)
	}

	a.LeaderboardModule, err = leaderboard.NewLeaderboardModule(ctx, *obs, db, shootRepo, tournamentRepo, athleteRepo, bus, router, a.helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize leaderboard module: %w", err)
	}

	a.ShootOffModule, err = shootoff.NewShootOffModule(ctx, cfg, *obs, db, tournamentRepo, athleteRepo, bus, router, a.helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize shoot-off module: %w", err)
	}

	return nil
}

// Run starts the router, the metrics server, and every module, and blocks
// until the context is cancelled or the router stops.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	if a.MetricsServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.MetricsServer.Start(); err != nil {
				a.Observability.Logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	for _, mod := range []interface {
		Run(context.Context, *sync.WaitGroup)
	}{
		a.AthleteModule,
		a.TournamentModule,
		a.ShootModule,
		a.StatsModule,
		a.LeaderboardModule,
		a.ShootOffModule,
	} {
		wg.Add(1)
		go mod.Run(ctx, &wg)
	}

	routerErr := make(chan error, 1)
	go func() {
		routerErr <- a.Router.Run(ctx)
	}()

	var runErr error
	select {
	case err := <-routerErr:
		if err != nil {
			runErr = fmt.Errorf("router stopped: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Observability.Logger.Error("metrics server shutdown failed", "error", err)
		}
	}

	wg.Wait()
	return runErr
}

// Close releases every shared resource.
func (a *App) Close() {
	logger := a.Observability.Logger

	for _, mod := range []interface{ Close() error }{
		a.AthleteModule,
		a.TournamentModule,
		a.ShootModule,
		a.StatsModule,
		a.LeaderboardModule,
		a.ShootOffModule,
	} {
		if err := mod.Close(); err != nil {
			logger.Error("module close failed", "error", err)
		}
	}

	if a.Router != nil {
		if err := a.Router.Close(); err != nil {
			logger.Error("router close failed", "error", err)
		}
	}
	if a.EventBus != nil {
		if err := a.EventBus.Close(); err != nil {
			logger.Error("event bus close failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			logger.Error("database close failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Observability.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", "error", err)
	}
}
