package leaderboardservice

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	leaderboarddb "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/repositories"
	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
)

type fakeSnapshotRepo struct {
	standings   map[sharedtypes.TournamentID][]leaderboarddomain.Standing
	generatedAt map[sharedtypes.TournamentID]time.Time
	saveErr     error
}

func (f *fakeSnapshotRepo) GetCurrent(_ context.Context, tournamentID sharedtypes.TournamentID) ([]leaderboarddomain.Standing, time.Time, error) {
	standings, ok := f.standings[tournamentID]
	if !ok {
		return nil, time.Time{}, leaderboarddb.ErrSnapshotNotFound
	}
	return standings, f.generatedAt[tournamentID], nil
}

func (f *fakeSnapshotRepo) Save(_ context.Context, tournamentID sharedtypes.TournamentID, standings []leaderboarddomain.Standing, generatedAt time.Time) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.standings == nil {
		f.standings = make(map[sharedtypes.TournamentID][]leaderboarddomain.Standing)
		f.generatedAt = make(map[sharedtypes.TournamentID]time.Time)
	}
	f.standings[tournamentID] = standings
	f.generatedAt[tournamentID] = generatedAt
	return nil
}

type fakeShootRepo struct {
	shoots []shootdomain.Shoot
}

func (f *fakeShootRepo) LogShoot(_ context.Context, shoot *shootdomain.Shoot, _ string) error {
	f.shoots = append(f.shoots, *shoot)
	return nil
}

func (f *fakeShootRepo) GetForAthleteDiscipline(_ context.Context, athleteID sharedtypes.AthleteID, disciplineID sharedtypes.DisciplineID, _ *shootdb.Window) ([]shootdomain.Shoot, error) {
	var out []shootdomain.Shoot
	for _, s := range f.shoots {
		if s.AthleteID == athleteID && s.DisciplineID == disciplineID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShootRepo) GetForAthlete(_ context.Context, athleteID sharedtypes.AthleteID, _ *shootdb.Window) ([]shootdomain.Shoot, error) {
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

type fakeShootOffLookup struct {
	existing []leaderboarddomain.ExistingShootOff
	err      error
}

func (f *fakeShootOffLookup) ActiveForTournament(_ context.Context, _ sharedtypes.TournamentID) ([]leaderboarddomain.ExistingShootOff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

type testDeps struct {
	snapshots   *fakeSnapshotRepo
	shoots      *fakeShootRepo
	tournaments *fakeTournamentRepo
	athletes    *fakeAthleteRepo
	shootOffs   *fakeShootOffLookup
}

func newTestService() (*LeaderboardService, *testDeps) {
	deps := &testDeps{
		snapshots:   &fakeSnapshotRepo{},
		shoots:      &fakeShootRepo{},
		tournaments: &fakeTournamentRepo{},
		athletes:    &fakeAthleteRepo{},
		shootOffs:   &fakeShootOffLookup{},
	}
	svc := NewLeaderboardService(
		deps.snapshots,
		deps.shoots,
		deps.tournaments,
		deps.athletes,
		deps.shootOffs,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
	return svc, deps
}
