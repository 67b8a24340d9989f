package shootoffservice

import (
	"context"

	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// Service defines the operations offered by the shoot-off module.
type Service interface {
	CreateShootOff(ctx context.Context, req CreateRequest) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error)
	Start(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error)
	CreateRound(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*RoundResult, *ShootOffFailure], error)
	SubmitRoundScores(ctx context.Context, req SubmitScoresRequest) (results.OperationResult[*ScoredRoundResult, *ShootOffFailure], error)
	DeclareWinner(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error)
	Cancel(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error)
	ListForTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]shootoffdomain.ShootOff, error)
}

// CreateRequest carries an operator's decision to hold a shoot-off for a
// detected tie. DisciplineID is nil unless the tie is scoped to one
// discipline.
type CreateRequest struct {
	TournamentID sharedtypes.TournamentID
	DisciplineID *sharedtypes.DisciplineID
	Position     int
	TiedScore    int
	AthleteIDs   []sharedtypes.AthleteID
}

// SubmitScoresRequest carries one round's scores.
type SubmitScoresRequest struct {
	ShootOffID  sharedtypes.ShootOffID
	RoundNumber int
	Scores      map[sharedtypes.AthleteID]int
}

// RoundResult reports a newly opened round.
type RoundResult struct {
	ShootOff *shootoffdomain.ShootOff
	Round    shootoffdomain.Round
}

// ScoredRoundResult reports a scored round and its eliminations.
type ScoredRoundResult struct {
	ShootOff         *shootoffdomain.ShootOff
	RoundNumber      int
	Eliminated       []sharedtypes.AthleteID
	ActiveRemaining  int
	WinnerDeclarable bool
}

// ShootOffFailure is the business-failure payload for shoot-off operations.
type ShootOffFailure struct {
	Reason string `json:"reason"`
}
