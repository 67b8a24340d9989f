package shootservice

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
)

type fakeShootRepo struct {
	shoots  []shootdomain.Shoot
	sources map[sharedtypes.ShootID]string
	logErr  error
	getErr  error
}

func (f *fakeShootRepo) LogShoot(_ context.Context, shoot *shootdomain.Shoot, source string) error {
	if f.logErr != nil {
		return f.logErr
	}
	if f.sources == nil {
		f.sources = make(map[sharedtypes.ShootID]string)
	}
	for i, existing := range f.shoots {
		if existing.AthleteID == shoot.AthleteID &&
			existing.TournamentID == shoot.TournamentID &&
			existing.DisciplineID == shoot.DisciplineID &&
			existing.Date.Equal(shoot.Date) {
			f.shoots[i] = *shoot
			f.sources[shoot.ID] = source
			return nil
		}
	}
	f.shoots = append(f.shoots, *shoot)
	f.sources[shoot.ID] = source
	return nil
}

func (f *fakeShootRepo) GetForAthleteDiscipline(_ context.Context, athleteID sharedtypes.AthleteID, disciplineID sharedtypes.DisciplineID, window *shootdb.Window) ([]shootdomain.Shoot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.AthleteID != athleteID || s.DisciplineID != disciplineID {
			continue
		}
		if window != nil {
			if !window.From.IsZero() && s.Date.Before(window.From) {
				continue
			}
			if !window.To.IsZero() && s.Date.After(window.To) {
				continue
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShootRepo) GetForAthlete(_ context.Context, athleteID sharedtypes.AthleteID, window *shootdb.Window) ([]shootdomain.Shoot, error) {
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.AthleteID == athleteID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShootRepo) GetForTournament(_ context.Context, tournamentID sharedtypes.TournamentID) ([]shootdomain.Shoot, error) {
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.TournamentID == tournamentID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTournamentRepo struct {
	tournaments map[sharedtypes.TournamentID]*tournamentdomain.Tournament
	getErr      error
}

func (f *fakeTournamentRepo) Get(_ context.Context, id sharedtypes.TournamentID) (*tournamentdomain.Tournament, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMetrics() observability.OperationMetrics {
	return observability.NoOpMetrics{}
}

func testTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("test")
}

func newTestService(repo *fakeShootRepo, tournaments *fakeTournamentRepo) *ShootService {
	return NewShootService(repo, tournaments, testLogger(), testMetrics(), testTracer(), 60, 0)
}
