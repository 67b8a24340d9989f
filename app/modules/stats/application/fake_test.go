package statsservice

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace/noop"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
)

type fakeShootRepo struct {
	shoots []shootdomain.Shoot
	err    error
}

func (f *fakeShootRepo) LogShoot(_ context.Context, shoot *shootdomain.Shoot, _ string) error {
	f.shoots = append(f.shoots, *shoot)
	return nil
}

func (f *fakeShootRepo) GetForAthleteDiscipline(_ context.Context, athleteID sharedtypes.AthleteID, disciplineID sharedtypes.DisciplineID, _ *shootdb.Window) ([]shootdomain.Shoot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.AthleteID == athleteID && s.DisciplineID == disciplineID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShootRepo) GetForAthlete(_ context.Context, athleteID sharedtypes.AthleteID, window *shootdb.Window) ([]shootdomain.Shoot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.AthleteID != athleteID {
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

func (f *fakeShootRepo) GetForTournament(_ context.Context, tournamentID sharedtypes.TournamentID) ([]shootdomain.Shoot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.TournamentID == tournamentID {
			out = append(out, s)
		}
	}
	return out, nil
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

func newTestService(shoots *fakeShootRepo, athletes *fakeAthleteRepo) *StatsService {
	return NewStatsService(
		shoots,
		athletes,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}
