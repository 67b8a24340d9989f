package tournamentservice

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace/noop"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
)

type fakeTournamentRepo struct {
	tournaments map[sharedtypes.TournamentID]*tournamentdomain.Tournament
	upsertErr   error
}

func (f *fakeTournamentRepo) Get(_ context.Context, id sharedtypes.TournamentID) (*tournamentdomain.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, tournamentdb.ErrTournamentNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTournamentRepo) Upsert(_ context.Context, t *tournamentdomain.Tournament) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.tournaments == nil {
		f.tournaments = make(map[sharedtypes.TournamentID]*tournamentdomain.Tournament)
	}
	stored := *t
	f.tournaments[t.ID] = &stored
	return nil
}

func (f *fakeTournamentRepo) UpdateStatus(_ context.Context, id sharedtypes.TournamentID, from, to tournamentdomain.Status) error {
	t, ok := f.tournaments[id]
	if !ok || t.Status != from {
		return fmt.Errorf("tournament %s is no longer in status %s", id, from)
	}
	t.Status = to
	return nil
}

func newTestService() (*TournamentService, *fakeTournamentRepo) {
	repo := &fakeTournamentRepo{}
	svc := NewTournamentService(
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
	return svc, repo
}
