package statsservice

import (
	"context"
	"errors"
	"fmt"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	statsdomain "github.com/clay-target-club/claybot/app/modules/stats/domain"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// GetAthleteStats recomputes one athlete's per-discipline aggregates from
// their shoot history. An athlete with no shoots gets an empty, successful
// result.
func (s *StatsService) GetAthleteStats(ctx context.Context, req AthleteStatsRequest) (results.OperationResult[*AthleteStats, *StatsFailure], error) {
	return withTelemetry(s, ctx, "GetAthleteStats", func(ctx context.Context) (results.OperationResult[*AthleteStats, *StatsFailure], error) {
		if _, err := s.athletes.GetByID(ctx, req.AthleteID); err != nil {
			if errors.Is(err, athletedb.ErrAthleteNotFound) {
				return results.Failure[*AthleteStats](&StatsFailure{
					Reason: fmt.Sprintf("athlete %s not found", req.AthleteID),
				}), nil
			}
			return results.OperationResult[*AthleteStats, *StatsFailure]{}, fmt.Errorf("loading athlete: %w", err)
		}

		var window *shootdb.Window
		if req.From != nil || req.To != nil {
			window = &shootdb.Window{}
			if req.From != nil {
				window.From = *req.From
			}
			if req.To != nil {
				window.To = *req.To
			}
		}

		shoots, err := s.shoots.GetForAthlete(ctx, req.AthleteID, window)
		if err != nil {
			return results.OperationResult[*AthleteStats, *StatsFailure]{}, fmt.Errorf("loading shoots: %w", err)
		}

		stats := &AthleteStats{
			AthleteID:   req.AthleteID,
			Disciplines: statsdomain.BuildDisciplineStats(shoots),
		}

		s.logger.InfoContext(ctx, "Athlete stats computed",
			attr.ExtractCorrelationID(ctx),
			attr.AthleteID("athlete_id", req.AthleteID),
			attr.Int("disciplines", len(stats.Disciplines)),
		)

		return results.Success[*AthleteStats, *StatsFailure](stats), nil
	})
}
