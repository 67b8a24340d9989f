package leaderboardservice

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func seedShoot(deps *testDeps, athleteID sharedtypes.AthleteID, tournamentID sharedtypes.TournamentID, hits int) {
	deps.shoots.shoots = append(deps.shoots.shoots, shootdomain.Shoot{
		ID:           sharedtypes.ShootID(uuid.New()),
		AthleteID:    athleteID,
		TournamentID: tournamentID,
		DisciplineID: sharedtypes.DisciplineTrap,
		Date:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Scores:       []shootdomain.StationScore{{Station: 1, Hits: hits, Possible: 100}},
	})
}

func seedTournament(t *testing.T, deps *testDeps, triggers ...tournamentdomain.Trigger) sharedtypes.TournamentID {
	t.Helper()
	tournament := &tournamentdomain.Tournament{
		ID:        sharedtypes.TournamentID(uuid.New()),
		Name:      "State Championship",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		Status:    tournamentdomain.StatusActive,
		Disciplines: []tournamentdomain.DisciplineConfig{
			{DisciplineID: sharedtypes.DisciplineTrap, Rounds: 4},
		},
		ShootOffs: tournamentdomain.ShootOffConfig{
			Enabled:         len(triggers) > 0,
			Triggers:        triggers,
			Format:          tournamentdomain.FormatSuddenDeath,
			TargetsPerRound: 2,
		},
	}
	require.NoError(t, deps.tournaments.Upsert(context.Background(), tournament))
	return tournament.ID
}

func TestRebuildStandings(t *testing.T) {
	svc, deps := newTestService()
	tournamentID := seedTournament(t, deps, tournamentdomain.TriggerFirst)

	a := sharedtypes.AthleteID(uuid.New())
	b := sharedtypes.AthleteID(uuid.New())
	seedShoot(deps, a, tournamentID, 95)
	seedShoot(deps, b, tournamentID, 90)

	result, err := svc.RebuildStandings(context.Background(), tournamentID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	standings := (*result.Success).Standings
	require.Len(t, standings, 2)
	assert.Equal(t, a, standings[0].AthleteID)
	assert.Equal(t, 1, standings[0].Rank)

	// Snapshot is persisted.
	saved, _, err := deps.snapshots.GetCurrent(context.Background(), tournamentID)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestRebuildStandingsEmptyTournament(t *testing.T) {
	svc, deps := newTestService()
	tournamentID := seedTournament(t, deps)

	result, err := svc.RebuildStandings(context.Background(), tournamentID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Empty(t, (*result.Success).Standings)
}

func TestDetectTies(t *testing.T) {
	svc, deps := newTestService()
	tournamentID := seedTournament(t, deps, tournamentdomain.TriggerFirst)

	a := sharedtypes.AthleteID(uuid.New())
	b := sharedtypes.AthleteID(uuid.New())
	c := sharedtypes.AthleteID(uuid.New())
	seedShoot(deps, a, tournamentID, 95)
	seedShoot(deps, b, tournamentID, 95)
	seedShoot(deps, c, tournamentID, 90)

	result, err := svc.DetectTies(context.Background(), tournamentID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	candidates := *result.Success
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Position)
	assert.Equal(t, 95, candidates[0].TiedScore)
	assert.Len(t, candidates[0].AthleteIDs, 2)
}

func TestDetectTiesSuppressedByExistingShootOff(t *testing.T) {
	svc, deps := newTestService()
	tournamentID := seedTournament(t, deps, tournamentdomain.TriggerFirst)

	a := sharedtypes.AthleteID(uuid.New())
	b := sharedtypes.AthleteID(uuid.New())
	seedShoot(deps, a, tournamentID, 95)
	seedShoot(deps, b, tournamentID, 95)

	deps.shootOffs.existing = []leaderboarddomain.ExistingShootOff{{
		Position:     1,
		Participants: []sharedtypes.AthleteID{a, b},
	}}

	result, err := svc.DetectTies(context.Background(), tournamentID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Empty(t, result.Success)
}

func TestDetectTiesUnknownTournament(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.DetectTies(context.Background(), sharedtypes.TournamentID(uuid.New()))
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "not found")
}

func TestExportStandings(t *testing.T) {
	svc, deps := newTestService()
	tournamentID := seedTournament(t, deps)

	athleteID := sharedtypes.AthleteID(uuid.New())
	firstYear := false
	require.NoError(t, deps.athletes.Upsert(context.Background(), &athletedomain.Athlete{
		ID:                   athleteID,
		Name:                 "Jordan Pike",
		Grade:                athletedomain.GradeSenior,
		FirstYearCompetition: &firstYear,
		IsActive:             true,
	}))
	seedShoot(deps, athleteID, tournamentID, 88)

	_, err := svc.RebuildStandings(context.Background(), tournamentID)
	require.NoError(t, err)

	result, err := svc.ExportStandings(context.Background(), tournamentID)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	f, err := excelize.OpenReader(bytes.NewReader(*result.Success))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Rank", rows[0][0])
	assert.Equal(t, "Jordan Pike", rows[1][1])
	assert.Equal(t, string(athletedomain.DivisionVarsity), rows[1][2])
}

func TestExportStandingsNoSnapshot(t *testing.T) {
	svc, deps := newTestService()
	tournamentID := seedTournament(t, deps)

	result, err := svc.ExportStandings(context.Background(), tournamentID)
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "no standings")
}
