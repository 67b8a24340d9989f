package tournamentservice

import (
	"context"
	"time"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// Service defines the operations offered by the tournament module.
type Service interface {
	UpsertTournament(ctx context.Context, req UpsertRequest) (results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure], error)
	UpdateStatus(ctx context.Context, id sharedtypes.TournamentID, to tournamentdomain.Status) (results.OperationResult[*StatusChange, *TournamentFailure], error)
	GetTournament(ctx context.Context, id sharedtypes.TournamentID) (results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure], error)
}

// UpsertRequest creates or updates a tournament. A zero TournamentID creates
// a new tournament in the upcoming state; updates keep the stored status.
type UpsertRequest struct {
	TournamentID sharedtypes.TournamentID
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	Disciplines  []tournamentdomain.DisciplineConfig
	ShootOffs    tournamentdomain.ShootOffConfig
}

// StatusChange reports an applied lifecycle transition.
type StatusChange struct {
	TournamentID sharedtypes.TournamentID
	From         tournamentdomain.Status
	To           tournamentdomain.Status
}

// TournamentFailure is the business-failure payload for tournament
// operations.
type TournamentFailure struct {
	Reason string `json:"reason"`
}
