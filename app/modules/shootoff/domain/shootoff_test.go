package shootoffdomain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func testConfig() tournamentdomain.ShootOffConfig {
	return tournamentdomain.ShootOffConfig{
		Enabled:         true,
		Triggers:        []tournamentdomain.Trigger{tournamentdomain.TriggerFirst},
		Format:          tournamentdomain.FormatSuddenDeath,
		TargetsPerRound: 2,
	}
}

func newTestShootOff(t *testing.T, names ...string) (*ShootOff, []sharedtypes.AthleteID) {
	t.Helper()
	athletes := make([]Participant, len(names))
	ids := make([]sharedtypes.AthleteID, len(names))
	for i, name := range names {
		ids[i] = sharedtypes.AthleteID(uuid.New())
		athletes[i] = Participant{AthleteID: ids[i], Name: name}
	}
	so, err := NewShootOff(
		sharedtypes.ShootOffID(uuid.New()),
		sharedtypes.TournamentID(uuid.New()),
		nil,
		1,
		testConfig(),
		95,
		athletes,
	)
	require.NoError(t, err)
	return so, ids
}

func scoresFor(ids []sharedtypes.AthleteID, values ...int) map[sharedtypes.AthleteID]int {
	scores := make(map[sharedtypes.AthleteID]int, len(values))
	for i, v := range values {
		scores[ids[i]] = v
	}
	return scores
}

func TestNewShootOff(t *testing.T) {
	so, _ := newTestShootOff(t, "Avery", "Blake")
	assert.Equal(t, StatusPending, so.Status)
	assert.Equal(t, 2, so.TargetsPerRound)
	assert.Nil(t, so.DisciplineID)
	assert.Len(t, so.Participants, 2)
	for _, p := range so.Participants {
		assert.Equal(t, 95, p.TiedScore)
		assert.False(t, p.Eliminated)
	}
}

func TestNewShootOffDisciplineScoped(t *testing.T) {
	discipline := sharedtypes.DisciplineTrap
	so, err := NewShootOff(
		sharedtypes.ShootOffID(uuid.New()),
		sharedtypes.TournamentID(uuid.New()),
		&discipline,
		1,
		testConfig(),
		95,
		[]Participant{
			{AthleteID: sharedtypes.AthleteID(uuid.New()), Name: "Avery"},
			{AthleteID: sharedtypes.AthleteID(uuid.New()), Name: "Blake"},
		},
	)
	require.NoError(t, err)
	require.NotNil(t, so.DisciplineID)
	assert.Equal(t, sharedtypes.DisciplineTrap, *so.DisciplineID)
}

func TestNewShootOffRejectsSingleParticipant(t *testing.T) {
	_, err := NewShootOff(
		sharedtypes.ShootOffID(uuid.New()),
		sharedtypes.TournamentID(uuid.New()),
		nil,
		1,
		testConfig(),
		95,
		[]Participant{{AthleteID: sharedtypes.AthleteID(uuid.New()), Name: "Solo"}},
	)
	require.Error(t, err)
}

func TestNewShootOffRejectsDuplicateAthlete(t *testing.T) {
	id := sharedtypes.AthleteID(uuid.New())
	_, err := NewShootOff(
		sharedtypes.ShootOffID(uuid.New()),
		sharedtypes.TournamentID(uuid.New()),
		nil,
		1,
		testConfig(),
		95,
		[]Participant{{AthleteID: id, Name: "A"}, {AthleteID: id, Name: "A"}},
	)
	require.Error(t, err)
}

func TestStartOnlyFromPending(t *testing.T) {
	so, _ := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so.Start())
	assert.Equal(t, StatusInProgress, so.Status)

	err := so.Start()
	require.Error(t, err)
	assert.Equal(t, StatusInProgress, so.Status)
}

func TestCancelFromPendingAndInProgress(t *testing.T) {
	so, _ := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so.Cancel())
	assert.Equal(t, StatusCancelled, so.Status)

	so2, _ := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so2.Start())
	require.NoError(t, so2.Cancel())
	assert.Equal(t, StatusCancelled, so2.Status)

	// Terminal: no transitions out of cancelled.
	require.Error(t, so2.Start())
	require.Error(t, so2.Cancel())
}

func TestCancelRetainsRoundData(t *testing.T) {
	so, ids := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so.Start())
	_, err := so.CreateRound()
	require.NoError(t, err)
	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 2)))

	require.NoError(t, so.Cancel())
	assert.Len(t, so.Rounds, 1)
	assert.Nil(t, so.WinnerID)
}

func TestCreateRoundRequiresInProgress(t *testing.T) {
	so, _ := newTestShootOff(t, "Avery", "Blake")
	_, err := so.CreateRound()
	require.Error(t, err)
	assert.Empty(t, so.Rounds)
}

func TestCreateRoundRequiresPreviousScored(t *testing.T) {
	so, _ := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so.Start())

	_, err := so.CreateRound()
	require.NoError(t, err)
	_, err = so.CreateRound()
	require.Error(t, err)
	assert.Len(t, so.Rounds, 1)
}

func TestSubmitRoundScoresValidation(t *testing.T) {
	so, ids := newTestShootOff(t, "Avery", "Blake", "Casey")
	require.NoError(t, so.Start())
	_, err := so.CreateRound()
	require.NoError(t, err)

	t.Run("missing participant", func(t *testing.T) {
		err := so.SubmitRoundScores(1, map[sharedtypes.AthleteID]int{ids[0]: 2})
		require.Error(t, err)
		assert.Nil(t, so.Rounds[0].CompletedAt)
	})

	t.Run("score above targets per round", func(t *testing.T) {
		err := so.SubmitRoundScores(1, scoresFor(ids, 2, 2, 3))
		require.Error(t, err)
		assert.Nil(t, so.Rounds[0].CompletedAt)
	})

	t.Run("negative score", func(t *testing.T) {
		err := so.SubmitRoundScores(1, scoresFor(ids, 2, 2, -1))
		require.Error(t, err)
		assert.Nil(t, so.Rounds[0].CompletedAt)
	})

	t.Run("unknown athlete", func(t *testing.T) {
		scores := scoresFor(ids, 2, 2, 1)
		scores[sharedtypes.AthleteID(uuid.New())] = 2
		err := so.SubmitRoundScores(1, scores)
		require.Error(t, err)
		assert.Nil(t, so.Rounds[0].CompletedAt)
	})

	t.Run("unknown round", func(t *testing.T) {
		err := so.SubmitRoundScores(2, scoresFor(ids, 2, 2, 1))
		require.Error(t, err)
	})

	// Rejections above left the aggregate untouched; the valid submission
	// still works.
	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 2, 1)))
	require.NotNil(t, so.Rounds[0].CompletedAt)

	err = so.SubmitRoundScores(1, scoresFor(ids, 2, 2, 1))
	require.Error(t, err, "re-scoring a completed round is rejected")
}

func TestEliminationLowestOut(t *testing.T) {
	// Four shooters, round one [2,2,1,1]: both shooters of 1 are out.
	so, ids := newTestShootOff(t, "Avery", "Blake", "Casey", "Drew")
	require.NoError(t, so.Start())
	_, err := so.CreateRound()
	require.NoError(t, err)

	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 2, 1, 1)))

	active := so.ActiveParticipants()
	require.Len(t, active, 2)
	assert.Equal(t, ids[0], active[0].AthleteID)
	assert.Equal(t, ids[1], active[1].AthleteID)
	for _, p := range so.Participants {
		if p.AthleteID == ids[2] || p.AthleteID == ids[3] {
			assert.True(t, p.Eliminated)
			assert.Equal(t, 1, p.EliminatedRound)
		}
	}
}

func TestEliminationFullTieEliminatesNobody(t *testing.T) {
	so, ids := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so.Start())
	_, err := so.CreateRound()
	require.NoError(t, err)

	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 2)))

	assert.Len(t, so.ActiveParticipants(), 2)
	for _, p := range so.Participants {
		assert.False(t, p.Eliminated)
	}

	// Play continues: a new round opens with the same roster.
	round, err := so.CreateRound()
	require.NoError(t, err)
	assert.Equal(t, 2, round.RoundNumber)
	assert.Len(t, round.Roster, 2)
}

func TestDeclareWinnerRequiresSingleActive(t *testing.T) {
	so, ids := newTestShootOff(t, "Avery", "Blake", "Casey")
	require.NoError(t, so.Start())

	_, err := so.DeclareWinner()
	require.Error(t, err, "three active participants")
	assert.Equal(t, StatusInProgress, so.Status)
	assert.Nil(t, so.WinnerID)

	_, err = so.CreateRound()
	require.NoError(t, err)
	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 2, 0)))

	_, err = so.DeclareWinner()
	require.Error(t, err, "two active participants")
	assert.Nil(t, so.WinnerID)
}

func TestSuddenDeathFullFlow(t *testing.T) {
	// Scenario: four shooters, [2,2,1,1] eliminates two; [2,2] full tie keeps
	// both; [2,1] leaves one active and the winner is declared.
	so, ids := newTestShootOff(t, "Avery", "Blake", "Casey", "Drew")
	require.NoError(t, so.Start())

	_, err := so.CreateRound()
	require.NoError(t, err)
	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 2, 1, 1)))
	require.Len(t, so.ActiveParticipants(), 2)

	round2, err := so.CreateRound()
	require.NoError(t, err)
	require.Len(t, round2.Roster, 2)
	require.NoError(t, so.SubmitRoundScores(2, map[sharedtypes.AthleteID]int{
		ids[0]: 2, ids[1]: 2,
	}))
	require.Len(t, so.ActiveParticipants(), 2, "full tie eliminates nobody")

	round3, err := so.CreateRound()
	require.NoError(t, err)
	require.Equal(t, 3, round3.RoundNumber)
	require.NoError(t, so.SubmitRoundScores(3, map[sharedtypes.AthleteID]int{
		ids[0]: 2, ids[1]: 1,
	}))
	require.Len(t, so.ActiveParticipants(), 1)

	winnerID, err := so.DeclareWinner()
	require.NoError(t, err)
	assert.Equal(t, ids[0], winnerID)
	assert.Equal(t, StatusCompleted, so.Status)
	require.NotNil(t, so.WinnerID)

	places := make(map[sharedtypes.AthleteID]int)
	for _, p := range so.Participants {
		require.NotNil(t, p.FinalPlace, "every participant gets a final place")
		places[p.AthleteID] = *p.FinalPlace
	}
	assert.Equal(t, 1, places[ids[0]], "winner")
	assert.Equal(t, 2, places[ids[1]], "eliminated last")
	// Casey and Drew went out together in round one and share a place band.
	assert.Equal(t, 3, places[ids[2]])
	assert.Equal(t, 3, places[ids[3]])
}

func TestDeclareWinnerTerminal(t *testing.T) {
	so, ids := newTestShootOff(t, "Avery", "Blake")
	require.NoError(t, so.Start())
	_, err := so.CreateRound()
	require.NoError(t, err)
	require.NoError(t, so.SubmitRoundScores(1, scoresFor(ids, 2, 0)))

	_, err = so.DeclareWinner()
	require.NoError(t, err)

	_, err = so.DeclareWinner()
	require.Error(t, err)
	_, err = so.CreateRound()
	require.Error(t, err)
	require.Error(t, so.Cancel())
}
