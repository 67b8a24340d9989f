package tournamentservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func validUpsert() UpsertRequest {
	return UpsertRequest{
		Name:      "Fall Invitational",
		StartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Disciplines: []tournamentdomain.DisciplineConfig{
			{DisciplineID: sharedtypes.DisciplineTrap, Rounds: 4},
			{DisciplineID: sharedtypes.DisciplineSportingClays, Targets: 100, Stations: 10},
		},
		ShootOffs: tournamentdomain.ShootOffConfig{
			Enabled:         true,
			Triggers:        []tournamentdomain.Trigger{tournamentdomain.TriggerFirst},
			Format:          tournamentdomain.FormatSuddenDeath,
			TargetsPerRound: 5,
		},
	}
}

func TestUpsertTournament(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.UpsertTournament(context.Background(), validUpsert())
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	tournament := *result.Success
	assert.Equal(t, tournamentdomain.StatusUpcoming, tournament.Status)
	assert.NotEqual(t, sharedtypes.TournamentID{}, tournament.ID)
	assert.Len(t, repo.tournaments, 1)
}

func TestUpsertTournamentKeepsStatus(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.UpsertTournament(ctx, validUpsert())
	require.NoError(t, err)
	id := (*created.Success).ID
	repo.tournaments[id].Status = tournamentdomain.StatusActive

	req := validUpsert()
	req.TournamentID = id
	req.Name = "Fall Invitational (rescheduled)"
	updated, err := svc.UpsertTournament(ctx, req)
	require.NoError(t, err)
	require.True(t, updated.IsSuccess())
	assert.Equal(t, tournamentdomain.StatusActive, (*updated.Success).Status)
	assert.Equal(t, "Fall Invitational (rescheduled)", repo.tournaments[id].Name)
}

func TestUpsertTournamentValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		req := validUpsert()
		req.Name = "   "
		result, err := svc.UpsertTournament(ctx, req)
		require.NoError(t, err)
		require.True(t, result.IsFailure())
	})

	t.Run("end before start", func(t *testing.T) {
		req := validUpsert()
		req.EndDate = req.StartDate.AddDate(0, 0, -1)
		result, err := svc.UpsertTournament(ctx, req)
		require.NoError(t, err)
		require.True(t, result.IsFailure())
		assert.Contains(t, (*result.Failure).Reason, "precedes start date")
	})

	t.Run("trap without rounds", func(t *testing.T) {
		req := validUpsert()
		req.Disciplines = []tournamentdomain.DisciplineConfig{{DisciplineID: sharedtypes.DisciplineTrap}}
		result, err := svc.UpsertTournament(ctx, req)
		require.NoError(t, err)
		require.True(t, result.IsFailure())
	})
}

func TestUpsertTournamentStoresInvalidShootOffConfig(t *testing.T) {
	svc, repo := newTestService()

	// enabled but no format: stored anyway, shoot-off creation rejects later
	req := validUpsert()
	req.ShootOffs = tournamentdomain.ShootOffConfig{Enabled: true}
	result, err := svc.UpsertTournament(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	stored := repo.tournaments[(*result.Success).ID]
	assert.True(t, stored.ShootOffs.Enabled)
	assert.Error(t, stored.ShootOffs.Validate())
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.UpsertTournament(ctx, validUpsert())
	require.NoError(t, err)
	id := (*created.Success).ID

	result, err := svc.UpdateStatus(ctx, id, tournamentdomain.StatusActive)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	change := *result.Success
	assert.Equal(t, tournamentdomain.StatusUpcoming, change.From)
	assert.Equal(t, tournamentdomain.StatusActive, change.To)

	// finalizing can reopen back to active
	_, err = svc.UpdateStatus(ctx, id, tournamentdomain.StatusFinalizing)
	require.NoError(t, err)
	reopened, err := svc.UpdateStatus(ctx, id, tournamentdomain.StatusActive)
	require.NoError(t, err)
	assert.True(t, reopened.IsSuccess())
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.UpsertTournament(ctx, validUpsert())
	require.NoError(t, err)
	id := (*created.Success).ID

	result, err := svc.UpdateStatus(ctx, id, tournamentdomain.StatusCompleted)
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "illegal status transition")
}

func TestUpdateStatusUnknownTournament(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.UpdateStatus(context.Background(), sharedtypes.NewTournamentID(), tournamentdomain.StatusActive)
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, (*result.Failure).Reason, "not found")
}

func TestGetTournament(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.UpsertTournament(ctx, validUpsert())
	require.NoError(t, err)
	id := (*created.Success).ID

	result, err := svc.GetTournament(ctx, id)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Equal(t, "Fall Invitational", (*result.Success).Name)

	missing, err := svc.GetTournament(ctx, sharedtypes.NewTournamentID())
	require.NoError(t, err)
	assert.True(t, missing.IsFailure())
}
