package leaderboardservice

import (
	"context"
	"fmt"
	"time"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// RebuildStandings recomputes the tournament leaderboard from its shoots and
// stores the snapshot. A tournament with no shoots yields an empty, saved
// leaderboard rather than a failure so downstream consumers see a consistent
// state.
func (s *LeaderboardService) RebuildStandings(ctx context.Context, tournamentID sharedtypes.TournamentID) (results.OperationResult[*StandingsResult, *LeaderboardFailure], error) {
	return withTelemetry(s, ctx, "RebuildStandings", func(ctx context.Context) (results.OperationResult[*StandingsResult, *LeaderboardFailure], error) {
		shoots, err := s.shoots.GetForTournament(ctx, tournamentID)
		if err != nil {
			return results.OperationResult[*StandingsResult, *LeaderboardFailure]{}, fmt.Errorf("loading tournament shoots: %w", err)
		}

		standings := leaderboarddomain.BuildStandings(shoots)
		generatedAt := time.Now().UTC()

		if err := s.repo.Save(ctx, tournamentID, standings, generatedAt); err != nil {
			return results.OperationResult[*StandingsResult, *LeaderboardFailure]{}, fmt.Errorf("saving snapshot: %w", err)
		}

		s.logger.InfoContext(ctx, "Standings rebuilt",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", tournamentID),
			attr.Int("athletes", len(standings)),
		)

		return results.Success[*StandingsResult, *LeaderboardFailure](&StandingsResult{
			TournamentID: tournamentID,
			Standings:    standings,
			GeneratedAt:  generatedAt,
		}), nil
	})
}
