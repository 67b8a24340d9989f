package shootservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func validLogRequest() LogScoresRequest {
	return LogScoresRequest{
		AthleteID:    sharedtypes.AthleteID(uuid.New()),
		TournamentID: sharedtypes.TournamentID(uuid.New()),
		DisciplineID: sharedtypes.DisciplineTrap,
		Date:         time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC),
		Scores: []shootdomain.StationScore{
			{Station: 1, Hits: 23, Possible: 25},
			{Station: 2, Hits: 24, Possible: 25},
		},
		Source: "manual",
	}
}

func TestLogShootScores(t *testing.T) {
	repo := &fakeShootRepo{}
	svc := newTestService(repo, &fakeTournamentRepo{})

	result, err := svc.LogShootScores(context.Background(), validLogRequest())
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	shoot := *result.Success
	assert.Equal(t, 47, shoot.Totals().TotalTargets)
	assert.Equal(t, 50, shoot.Totals().TotalPossible)
	// Timestamps are truncated to the day.
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), shoot.Date)
	require.Len(t, repo.shoots, 1)
	assert.Equal(t, "manual", repo.sources[shoot.ID])
}

func TestLogShootScoresInvalidScores(t *testing.T) {
	repo := &fakeShootRepo{}
	svc := newTestService(repo, &fakeTournamentRepo{})

	req := validLogRequest()
	req.Scores = []shootdomain.StationScore{{Station: 1, Hits: 26, Possible: 25}}

	result, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "exceeds possible")
	assert.Empty(t, repo.shoots)
}

func TestLogShootScoresDuplicateRejected(t *testing.T) {
	repo := &fakeShootRepo{}
	svc := newTestService(repo, &fakeTournamentRepo{})
	req := validLogRequest()

	first, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)
	require.True(t, first.IsSuccess())

	second, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)
	require.True(t, second.IsFailure())
	assert.Contains(t, (*second.Failure).Reason, "already logged")
	assert.Len(t, repo.shoots, 1)
}

func TestLogShootScoresOverwrite(t *testing.T) {
	repo := &fakeShootRepo{}
	svc := newTestService(repo, &fakeTournamentRepo{})
	req := validLogRequest()

	_, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)

	req.Overwrite = true
	req.Scores = []shootdomain.StationScore{{Station: 1, Hits: 25, Possible: 25}}

	result, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	require.Len(t, repo.shoots, 1)
	assert.Equal(t, 25, repo.shoots[0].Totals().TotalTargets)
}

func TestLogShootScoresSameDateOtherTournament(t *testing.T) {
	repo := &fakeShootRepo{}
	svc := newTestService(repo, &fakeTournamentRepo{})
	req := validLogRequest()

	_, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)

	req.TournamentID = sharedtypes.TournamentID(uuid.New())
	result, err := svc.LogShootScores(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Len(t, repo.shoots, 2)
}

func TestLogShootScoresRepoError(t *testing.T) {
	repo := &fakeShootRepo{logErr: errors.New("connection refused")}
	svc := newTestService(repo, &fakeTournamentRepo{})

	result, err := svc.LogShootScores(context.Background(), validLogRequest())
	require.Error(t, err)
	assert.False(t, result.IsSuccess())
	assert.False(t, result.IsFailure())
}
