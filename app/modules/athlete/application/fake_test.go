package athleteservice

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace/noop"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
)

type fakeAthleteRepo struct {
	athletes  map[sharedtypes.AthleteID]athletedomain.Athlete
	upsertErr error
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
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.athletes == nil {
		f.athletes = make(map[sharedtypes.AthleteID]athletedomain.Athlete)
	}
	f.athletes[a.ID] = *a
	return nil
}

func newTestService() (*AthleteService, *fakeAthleteRepo) {
	repo := &fakeAthleteRepo{}
	svc := NewAthleteService(
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
	return svc, repo
}
