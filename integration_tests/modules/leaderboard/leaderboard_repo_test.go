package leaderboardintegration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	leaderboarddb "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/integration_tests/testutils"
)

var env *testutils.TestEnvironment

func TestMain(m *testing.M) {
	var err error
	env, err = testutils.NewTestEnvironment(context.Background())
	if err != nil {
		log.Fatalf("failed to set up test environment: %v", err)
	}
	code := m.Run()
	env.Cleanup()
	os.Exit(code)
}

func TestSnapshotSaveAndGet(t *testing.T) {
	ctx := env.Ctx
	env.ResetTables(ctx, t)
	repo := &leaderboarddb.LeaderboardDBImpl{DB: env.DB}

	tournamentID := sharedtypes.NewTournamentID()
	first := sharedtypes.NewAthleteID()
	second := sharedtypes.NewAthleteID()
	generatedAt := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	standings := []leaderboarddomain.Standing{
		{Rank: 1, AthleteID: first, TotalTargets: 96, TotalPossible: 100, Percentage: 96},
		{Rank: 2, AthleteID: second, TotalTargets: 91, TotalPossible: 100, Percentage: 91},
	}
	require.NoError(t, repo.Save(ctx, tournamentID, standings, generatedAt))

	got, at, err := repo.GetCurrent(ctx, tournamentID)
	require.NoError(t, err)
	assert.Equal(t, standings, got)
	assert.True(t, at.Equal(generatedAt))
}

func TestSnapshotRebuildReplaces(t *testing.T) {
	ctx := env.Ctx
	env.ResetTables(ctx, t)
	repo := &leaderboarddb.LeaderboardDBImpl{DB: env.DB}

	tournamentID := sharedtypes.NewTournamentID()
	athleteID := sharedtypes.NewAthleteID()

	require.NoError(t, repo.Save(ctx, tournamentID, []leaderboarddomain.Standing{
		{Rank: 1, AthleteID: athleteID, TotalTargets: 50, TotalPossible: 100, Percentage: 50},
	}, time.Now().UTC()))

	rebuiltAt := time.Now().UTC().Add(time.Minute)
	require.NoError(t, repo.Save(ctx, tournamentID, []leaderboarddomain.Standing{
		{Rank: 1, AthleteID: athleteID, TotalTargets: 75, TotalPossible: 100, Percentage: 75},
	}, rebuiltAt))

	got, at, err := repo.GetCurrent(ctx, tournamentID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 75, got[0].TotalTargets)
	assert.WithinDuration(t, rebuiltAt, at, time.Millisecond)
}

func TestSnapshotMissing(t *testing.T) {
	ctx := env.Ctx
	env.ResetTables(ctx, t)
	repo := &leaderboarddb.LeaderboardDBImpl{DB: env.DB}

	_, _, err := repo.GetCurrent(ctx, sharedtypes.NewTournamentID())
	assert.ErrorIs(t, err, leaderboarddb.ErrSnapshotNotFound)
}
