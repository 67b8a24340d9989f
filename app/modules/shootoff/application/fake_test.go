package shootoffservice

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
)

// fakeTxRunner invokes the closure directly; the fakes below ignore the
// transaction handle.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

type fakeShootOffRepo struct {
	shootOffs map[sharedtypes.ShootOffID]*shootoffdomain.ShootOff
	createErr error
	saveErr   error
}

func (f *fakeShootOffRepo) Create(_ context.Context, _ bun.IDB, shootOff *shootoffdomain.ShootOff) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.shootOffs == nil {
		f.shootOffs = make(map[sharedtypes.ShootOffID]*shootoffdomain.ShootOff)
	}
	stored := *shootOff
	f.shootOffs[shootOff.ID] = &stored
	return nil
}

func (f *fakeShootOffRepo) Get(_ context.Context, _ bun.IDB, id sharedtypes.ShootOffID) (*shootoffdomain.ShootOff, error) {
	so, ok := f.shootOffs[id]
	if !ok {
		return nil, shootoffdb.ErrShootOffNotFound
	}
	copied := *so
	return &copied, nil
}

func (f *fakeShootOffRepo) GetForUpdate(ctx context.Context, db bun.IDB, id sharedtypes.ShootOffID) (*shootoffdomain.ShootOff, error) {
	return f.Get(ctx, db, id)
}

func (f *fakeShootOffRepo) Save(_ context.Context, _ bun.IDB, shootOff *shootoffdomain.ShootOff) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.shootOffs[shootOff.ID]; !ok {
		return shootoffdb.ErrShootOffNotFound
	}
	stored := *shootOff
	f.shootOffs[shootOff.ID] = &stored
	return nil
}

func (f *fakeShootOffRepo) ListForTournament(_ context.Context, _ bun.IDB, tournamentID sharedtypes.TournamentID) ([]shootoffdomain.ShootOff, error) {
	var out []shootoffdomain.ShootOff
	for _, so := range f.shootOffs {
		if so.TournamentID == tournamentID {
			out = append(out, *so)
		}
	}
	return out, nil
}

type fakeTournamentRepo struct {
	tournaments map[sharedtypes.TournamentID]*tournamentdomain.Tournament
}

func (f *fakeTournamentRepo) Get(_ context.Context, id sharedtypes.TournamentID) (*tournamentdomain.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, tournamentdb.ErrTournamentNotFound
	}
	return t, nil
}

func (f *fakeTournamentRepo) Upsert(_ context.Context, t *tournamentdomain.Tournament) error {
	if f.tournaments == nil {
		f.tournaments = make(map[sharedtypes.TournamentID]*tournamentdomain.Tournament)
	}
	f.tournaments[t.ID] = t
	return nil
}

func (f *fakeTournamentRepo) UpdateStatus(_ context.Context, id sharedtypes.TournamentID, from, to tournamentdomain.Status) error {
	if t, ok := f.tournaments[id]; ok {
		t.Status = to
	}
	return nil
}

type fakeAthleteRepo struct {
	athletes map[sharedtypes.AthleteID]athletedomain.Athlete
}

func (f *fakeAthleteRepo) GetByID(_ context.Context, id sharedtypes.AthleteID) (*athletedomain.Athlete, error) {
	a, ok := f.athletes[id]
	if !ok {
		return nil, athletedb.ErrAthleteNotFound
	}
	return &a, nil
}

func (f *fakeAthleteRepo) GetByIDs(_ context.Context, ids []sharedtypes.AthleteID) ([]athletedomain.Athlete, error) {
	var out []athletedomain.Athlete
	for _, id := range ids {
		if a, ok := f.athletes[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAthleteRepo) ListActive(_ context.Context) ([]athletedomain.Athlete, error) {
	var out []athletedomain.Athlete
	for _, a := range f.athletes {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAthleteRepo) Upsert(_ context.Context, a *athletedomain.Athlete) error {
	if f.athletes == nil {
		f.athletes = make(map[sharedtypes.AthleteID]athletedomain.Athlete)
	}
	f.athletes[a.ID] = *a
	return nil
}

type testDeps struct {
	repo        *fakeShootOffRepo
	tournaments *fakeTournamentRepo
	athletes    *fakeAthleteRepo
}

func newTestService() (*ShootOffService, *testDeps) {
	deps := &testDeps{
		repo:        &fakeShootOffRepo{},
		tournaments: &fakeTournamentRepo{},
		athletes:    &fakeAthleteRepo{},
	}
	svc := NewShootOffService(
		fakeTxRunner{},
		nil,
		deps.repo,
		deps.tournaments,
		deps.athletes,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
	return svc, deps
}
