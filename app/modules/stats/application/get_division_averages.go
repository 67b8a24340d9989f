package statsservice

import (
	"context"
	"fmt"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	statsdomain "github.com/clay-target-club/claybot/app/modules/stats/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// DivisionAveragesRequest selects one tournament and one effective division.
type DivisionAveragesRequest struct {
	TournamentID sharedtypes.TournamentID
	Division     athletedomain.Division
}

// DivisionAverages holds one division's per-discipline unweighted mean shoot
// percentages for a tournament.
type DivisionAverages struct {
	TournamentID sharedtypes.TournamentID                                   `json:"tournament_id"`
	Division     athletedomain.Division                                     `json:"division"`
	Averages     map[sharedtypes.DisciplineID]statsdomain.DisciplineAverage `json:"averages"`
}

// GetDivisionAverages computes the per-discipline unweighted mean shoot
// percentage for one division across one tournament. Only shoots by athletes
// whose effective division matches the request are counted.
func (s *StatsService) GetDivisionAverages(ctx context.Context, req DivisionAveragesRequest) (results.OperationResult[*DivisionAverages, *StatsFailure], error) {
	return withTelemetry(s, ctx, "GetDivisionAverages", func(ctx context.Context) (results.OperationResult[*DivisionAverages, *StatsFailure], error) {
		if req.Division == athletedomain.DivisionNone {
			return results.Failure[*DivisionAverages](&StatsFailure{
				Reason: "a division is required",
			}), nil
		}

		shoots, err := s.shoots.GetForTournament(ctx, req.TournamentID)
		if err != nil {
			return results.OperationResult[*DivisionAverages, *StatsFailure]{}, fmt.Errorf("loading tournament shoots: %w", err)
		}
		if len(shoots) == 0 {
			return results.Failure[*DivisionAverages](&StatsFailure{
				Reason: fmt.Sprintf("tournament %s has no logged shoots", req.TournamentID),
			}), nil
		}

		seen := make(map[sharedtypes.AthleteID]struct{})
		ids := make([]sharedtypes.AthleteID, 0)
		for _, shoot := range shoots {
			if _, ok := seen[shoot.AthleteID]; ok {
				continue
			}
			seen[shoot.AthleteID] = struct{}{}
			ids = append(ids, shoot.AthleteID)
		}

		athletes, err := s.athletes.GetByIDs(ctx, ids)
		if err != nil {
			return results.OperationResult[*DivisionAverages, *StatsFailure]{}, fmt.Errorf("loading athletes: %w", err)
		}
		byID := make(map[sharedtypes.AthleteID]athletedomain.Athlete, len(athletes))
		for _, a := range athletes {
			byID[a.ID] = a
		}

		averages := statsdomain.BuildDivisionAverages(req.Division, shoots, byID)
		if len(averages) == 0 {
			return results.Failure[*DivisionAverages](&StatsFailure{
				Reason: fmt.Sprintf("tournament %s has no shoots in division %s", req.TournamentID, req.Division),
			}), nil
		}

		s.logger.InfoContext(ctx, "Division averages computed",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", req.TournamentID),
			attr.String("division", string(req.Division)),
			attr.Int("disciplines", len(averages)),
		)

		return results.Success[*DivisionAverages, *StatsFailure](&DivisionAverages{
			TournamentID: req.TournamentID,
			Division:     req.Division,
			Averages:     averages,
		}), nil
	})
}
