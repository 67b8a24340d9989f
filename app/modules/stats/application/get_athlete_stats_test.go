package statsservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	statsdomain "github.com/clay-target-club/claybot/app/modules/stats/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func seedAthlete(t *testing.T, repo *fakeAthleteRepo, grade athletedomain.Grade, firstYear *bool) sharedtypes.AthleteID {
	t.Helper()
	id := sharedtypes.AthleteID(uuid.New())
	require.NoError(t, repo.Upsert(context.Background(), &athletedomain.Athlete{
		ID:                   id,
		Name:                 "Test Athlete",
		Grade:                grade,
		FirstYearCompetition: firstYear,
		IsActive:             true,
	}))
	return id
}

func seedShoot(repo *fakeShootRepo, athleteID sharedtypes.AthleteID, tournamentID sharedtypes.TournamentID, disciplineID sharedtypes.DisciplineID, day int, hits int) {
	repo.shoots = append(repo.shoots, shootdomain.Shoot{
		ID:           sharedtypes.ShootID(uuid.New()),
		AthleteID:    athleteID,
		TournamentID: tournamentID,
		DisciplineID: disciplineID,
		Date:         time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC),
		Scores:       []shootdomain.StationScore{{Station: 1, Hits: hits, Possible: 100}},
	})
}

func TestGetAthleteStats(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)

	athleteID := seedAthlete(t, athletes, athletedomain.GradeFreshman, nil)
	tournamentID := sharedtypes.TournamentID(uuid.New())
	for day, hits := range map[int]int{1: 70, 2: 72, 3: 80, 4: 84} {
		seedShoot(shoots, athleteID, tournamentID, sharedtypes.DisciplineTrap, day, hits)
	}

	result, err := svc.GetAthleteStats(context.Background(), AthleteStatsRequest{AthleteID: athleteID})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	stats := *result.Success
	require.Len(t, stats.Disciplines, 1)
	trap := stats.Disciplines[0]
	assert.Equal(t, 4, trap.ShootCount)
	assert.Equal(t, statsdomain.TrendImproving, trap.Trend)
	assert.InDelta(t, 76.5, trap.AveragePercentage, 0.001)
	assert.Equal(t, 84.0, trap.BestPercentage)
}

func TestGetAthleteStatsUnknownAthlete(t *testing.T) {
	svc := newTestService(&fakeShootRepo{}, &fakeAthleteRepo{})

	result, err := svc.GetAthleteStats(context.Background(), AthleteStatsRequest{
		AthleteID: sharedtypes.AthleteID(uuid.New()),
	})
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "not found")
}

func TestGetAthleteStatsNoShoots(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)
	athleteID := seedAthlete(t, athletes, athletedomain.Grade7th, nil)

	result, err := svc.GetAthleteStats(context.Background(), AthleteStatsRequest{AthleteID: athleteID})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Empty(t, (*result.Success).Disciplines)
}

func TestGetAthleteStatsWindow(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)
	athleteID := seedAthlete(t, athletes, athletedomain.Grade7th, nil)
	tournamentID := sharedtypes.TournamentID(uuid.New())
	seedShoot(shoots, athleteID, tournamentID, sharedtypes.DisciplineTrap, 1, 70)
	seedShoot(shoots, athleteID, tournamentID, sharedtypes.DisciplineTrap, 10, 80)

	from := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
	result, err := svc.GetAthleteStats(context.Background(), AthleteStatsRequest{
		AthleteID: athleteID,
		From:      &from,
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	require.Len(t, (*result.Success).Disciplines, 1)
	assert.Equal(t, 1, (*result.Success).Disciplines[0].ShootCount)
}

func TestGetDivisionAverages(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)

	noviceID := seedAthlete(t, athletes, athletedomain.Grade5th, nil)
	varsityFlag := false
	varsityID := seedAthlete(t, athletes, athletedomain.GradeSenior, &varsityFlag)

	tournamentID := sharedtypes.TournamentID(uuid.New())
	seedShoot(shoots, varsityID, tournamentID, sharedtypes.DisciplineTrap, 1, 50)
	seedShoot(shoots, varsityID, tournamentID, sharedtypes.DisciplineSkeet, 1, 100)
	seedShoot(shoots, noviceID, tournamentID, sharedtypes.DisciplineTrap, 1, 40)

	result, err := svc.GetDivisionAverages(context.Background(), DivisionAveragesRequest{
		TournamentID: tournamentID,
		Division:     athletedomain.DivisionVarsity,
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	averages := *result.Success
	assert.Equal(t, athletedomain.DivisionVarsity, averages.Division)
	require.Len(t, averages.Averages, 2)
	assert.Equal(t, statsdomain.DisciplineAverage{ShootCount: 1, Average: 50}, averages.Averages[sharedtypes.DisciplineTrap])
	assert.Equal(t, statsdomain.DisciplineAverage{ShootCount: 1, Average: 100}, averages.Averages[sharedtypes.DisciplineSkeet])
}

func TestGetDivisionAveragesEmptyTournament(t *testing.T) {
	svc := newTestService(&fakeShootRepo{}, &fakeAthleteRepo{})

	result, err := svc.GetDivisionAverages(context.Background(), DivisionAveragesRequest{
		TournamentID: sharedtypes.TournamentID(uuid.New()),
		Division:     athletedomain.DivisionVarsity,
	})
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "no logged shoots")
}

func TestGetDivisionAveragesNoShootsInDivision(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)

	noviceID := seedAthlete(t, athletes, athletedomain.Grade5th, nil)
	tournamentID := sharedtypes.TournamentID(uuid.New())
	seedShoot(shoots, noviceID, tournamentID, sharedtypes.DisciplineTrap, 1, 40)

	result, err := svc.GetDivisionAverages(context.Background(), DivisionAveragesRequest{
		TournamentID: tournamentID,
		Division:     athletedomain.DivisionCollegiate,
	})
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "no shoots in division")
}

func TestRenderTrendChart(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)
	athleteID := seedAthlete(t, athletes, athletedomain.Grade8th, nil)
	tournamentID := sharedtypes.TournamentID(uuid.New())
	for day, hits := range map[int]int{1: 60, 2: 64, 3: 78, 4: 82} {
		seedShoot(shoots, athleteID, tournamentID, sharedtypes.DisciplineSkeet, day, hits)
	}

	result, err := svc.RenderTrendChart(context.Background(), TrendChartRequest{
		AthleteID:    athleteID,
		DisciplineID: sharedtypes.DisciplineSkeet,
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Equal(t, statsdomain.TrendImproving, (*result.Success).Trend)
	assert.NotEmpty(t, (*result.Success).PNG)
}

func TestRenderTrendChartTooFewShoots(t *testing.T) {
	shoots := &fakeShootRepo{}
	athletes := &fakeAthleteRepo{}
	svc := newTestService(shoots, athletes)
	athleteID := seedAthlete(t, athletes, athletedomain.Grade8th, nil)
	seedShoot(shoots, athleteID, sharedtypes.TournamentID(uuid.New()), sharedtypes.DisciplineSkeet, 1, 60)

	result, err := svc.RenderTrendChart(context.Background(), TrendChartRequest{
		AthleteID:    athleteID,
		DisciplineID: sharedtypes.DisciplineSkeet,
	})
	require.NoError(t, err)
	require.True(t, result.IsFailure())
}
