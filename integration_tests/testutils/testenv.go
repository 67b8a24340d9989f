// Package testutils provides the shared environment for integration tests:
// Postgres and NATS containers, a migrated bun DB, and a JetStream event bus.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	athletemigrations "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories/migrations"
	leaderboardmigrations "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/repositories/migrations"
	shootmigrations "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories/migrations"
	shootoffmigrations "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories/migrations"
	tournamentmigrations "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories/migrations"
	"github.com/clay-target-club/claybot/integration_tests/containers"
	"github.com/clay-target-club/claybot/internal/eventbus"
)

// TestEnvironment holds every resource an integration test needs. Create one
// per package in TestMain and share it across tests; call Cleanup when done.
type TestEnvironment struct {
	Ctx           context.Context
	cancel        context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	NatsContainer testcontainers.Container
	DB            *bun.DB
	EventBus      eventbus.EventBus
	NatsURL       string
	Logger        *slog.Logger
}

// NewTestEnvironment starts the containers, migrates the schema, and builds
// the event bus.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(ctx)

	env := &TestEnvironment{
		Ctx:    ctx,
		cancel: cancel,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
	if err != nil {
		env.teardown(ctx)
		return nil, fmt.Errorf("failed to setup nats container: %w", err)
	}
	env.NatsContainer = natsContainer
	env.NatsURL = natsURL

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	env.DB = bun.NewDB(sqldb, pgdialect.New())

	if err := runMigrations(ctx, env.DB); err != nil {
		env.teardown(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, natsURL, env.Logger)
	if err != nil {
		env.teardown(ctx)
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}
	env.EventBus = bus

	if err := eventbus.CreateStreams(ctx, bus); err != nil {
		env.teardown(ctx)
		return nil, fmt.Errorf("failed to create streams: %w", err)
	}

	return env, nil
}

// Cleanup releases every resource. Safe to call once after all tests ran.
func (env *TestEnvironment) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	env.teardown(ctx)
	env.cancel()
}

func (env *TestEnvironment) teardown(ctx context.Context) {
	if env.EventBus != nil {
		_ = env.EventBus.Close()
		env.EventBus = nil
	}
	if env.DB != nil {
		_ = env.DB.Close()
		env.DB = nil
	}
	if env.NatsContainer != nil {
		_ = env.NatsContainer.Terminate(ctx)
		env.NatsContainer = nil
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(ctx)
		env.PgContainer = nil
	}
}

// ResetTables truncates every module table so tests start from a clean
// database without re-running migrations.
func (env *TestEnvironment) ResetTables(ctx context.Context, t *testing.T) {
	t.Helper()
	for _, table := range []string{
		"athletes",
		"tournaments",
		"shoots",
		"leaderboard_snapshots",
		"shoot_offs",
	} {
		if _, err := env.DB.ExecContext(ctx, "TRUNCATE TABLE ? CASCADE", bun.Ident(table)); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	sets := map[string]*migrate.Migrations{
		"athlete":     athletemigrations.Migrations,
		"tournament":  tournamentmigrations.Migrations,
		"shoot":       shootmigrations.Migrations,
		"leaderboard": leaderboardmigrations.Migrations,
		"shootoff":    shootoffmigrations.Migrations,
	}
	for name, set := range sets {
		migrator := migrate.NewMigrator(db, set)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
	}
	return nil
}
