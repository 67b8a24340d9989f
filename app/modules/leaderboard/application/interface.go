package leaderboardservice

import (
	"context"
	"time"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// Service defines the operations offered by the leaderboard module.
type Service interface {
	RebuildStandings(ctx context.Context, tournamentID sharedtypes.TournamentID) (results.OperationResult[*StandingsResult, *LeaderboardFailure], error)
	DetectTies(ctx context.Context, tournamentID sharedtypes.TournamentID) (results.OperationResult[[]leaderboarddomain.TieCandidate, *LeaderboardFailure], error)
	ExportStandings(ctx context.Context, tournamentID sharedtypes.TournamentID) (results.OperationResult[[]byte, *LeaderboardFailure], error)
}

// StandingsResult is a freshly built leaderboard.
type StandingsResult struct {
	TournamentID sharedtypes.TournamentID     `json:"tournament_id"`
	Standings    []leaderboarddomain.Standing `json:"standings"`
	GeneratedAt  time.Time                    `json:"generated_at"`
}

// LeaderboardFailure is the business-failure payload for leaderboard
// operations.
type LeaderboardFailure struct {
	Reason string `json:"reason"`
}
