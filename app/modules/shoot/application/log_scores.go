package shootservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// LogShootScores validates and records one athlete's station scores for a
// tournament discipline. Re-logging the same athlete/tournament/discipline/date
// is rejected unless Overwrite is set.
func (s *ShootService) LogShootScores(ctx context.Context, req LogScoresRequest) (results.OperationResult[*shootdomain.Shoot, *LogScoresFailure], error) {
	return withTelemetry(s, ctx, "LogShootScores", func(ctx context.Context) (results.OperationResult[*shootdomain.Shoot, *LogScoresFailure], error) {
		if err := shootdomain.ValidateScores(req.Scores); err != nil {
			return results.Failure[*shootdomain.Shoot](&LogScoresFailure{Reason: err.Error()}), nil
		}

		date := req.Date.UTC().Truncate(24 * time.Hour)

		existing, err := s.repo.GetForAthleteDiscipline(ctx, req.AthleteID, req.DisciplineID, &shootdb.Window{From: date, To: date})
		if err != nil {
			return results.OperationResult[*shootdomain.Shoot, *LogScoresFailure]{}, fmt.Errorf("checking existing shoot: %w", err)
		}
		if !req.Overwrite {
			for _, prior := range existing {
				if prior.TournamentID == req.TournamentID {
					return results.Failure[*shootdomain.Shoot](&LogScoresFailure{
						Reason: "scores already logged for this athlete, discipline, and date",
					}), nil
				}
			}
		}

		shoot := &shootdomain.Shoot{
			ID:           sharedtypes.ShootID(uuid.New()),
			AthleteID:    req.AthleteID,
			TournamentID: req.TournamentID,
			DisciplineID: req.DisciplineID,
			Date:         date,
			Scores:       req.Scores,
		}

		if err := s.repo.LogShoot(ctx, shoot, req.Source); err != nil {
			return results.OperationResult[*shootdomain.Shoot, *LogScoresFailure]{}, fmt.Errorf("persisting shoot: %w", err)
		}

		s.logger.InfoContext(ctx, "Shoot scores logged",
			attr.ExtractCorrelationID(ctx),
			attr.AthleteID("athlete_id", shoot.AthleteID),
			attr.TournamentID("tournament_id", shoot.TournamentID),
			attr.String("discipline_id", string(shoot.DisciplineID)),
			attr.Int("stations", len(shoot.Scores)),
		)

		return results.Success[*shootdomain.Shoot, *LogScoresFailure](shoot), nil
	})
}
