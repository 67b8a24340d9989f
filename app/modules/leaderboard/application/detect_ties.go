package leaderboardservice

import (
	"context"
	"errors"
	"fmt"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// DetectTies rebuilds the standings from shoots and proposes shoot-offs for
// score bands matching the tournament's triggers. Bands already covered by a
// live shoot-off are skipped, so the operation can run after every score
// without creating duplicates. It never creates shoot-offs itself.
func (s *LeaderboardService) DetectTies(ctx context.Context, tournamentID sharedtypes.TournamentID) (results.OperationResult[[]leaderboarddomain.TieCandidate, *LeaderboardFailure], error) {
	return withTelemetry(s, ctx, "DetectTies", func(ctx context.Context) (results.OperationResult[[]leaderboarddomain.TieCandidate, *LeaderboardFailure], error) {
		tournament, err := s.tournaments.Get(ctx, tournamentID)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrTournamentNotFound) {
				return results.Failure[[]leaderboarddomain.TieCandidate](&LeaderboardFailure{
					Reason: fmt.Sprintf("tournament %s not found", tournamentID),
				}), nil
			}
			return results.OperationResult[[]leaderboarddomain.TieCandidate, *LeaderboardFailure]{}, fmt.Errorf("loading tournament: %w", err)
		}

		if err := tournament.ShootOffs.Validate(); err != nil {
			return results.Failure[[]leaderboarddomain.TieCandidate](&LeaderboardFailure{
				Reason: fmt.Sprintf("shoot-off config invalid: %v", err),
			}), nil
		}

		shoots, err := s.shoots.GetForTournament(ctx, tournamentID)
		if err != nil {
			return results.OperationResult[[]leaderboarddomain.TieCandidate, *LeaderboardFailure]{}, fmt.Errorf("loading tournament shoots: %w", err)
		}

		existing, err := s.shootOffs.ActiveForTournament(ctx, tournamentID)
		if err != nil {
			return results.OperationResult[[]leaderboarddomain.TieCandidate, *LeaderboardFailure]{}, fmt.Errorf("loading existing shoot-offs: %w", err)
		}

		standings := leaderboarddomain.BuildStandings(shoots)
		candidates := leaderboarddomain.DetectTies(standings, tournament.ShootOffs, existing)

		s.logger.InfoContext(ctx, "Tie detection completed",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", tournamentID),
			attr.Int("candidates", len(candidates)),
		)

		return results.Success[[]leaderboarddomain.TieCandidate, *LeaderboardFailure](candidates), nil
	})
}
