package athleteservice

import (
	"context"
	"errors"
	"fmt"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// GetAthlete returns one athlete.
func (s *AthleteService) GetAthlete(ctx context.Context, id sharedtypes.AthleteID) (results.OperationResult[*athletedomain.Athlete, *AthleteFailure], error) {
	return withTelemetry(s, ctx, "GetAthlete", func(ctx context.Context) (results.OperationResult[*athletedomain.Athlete, *AthleteFailure], error) {
		athlete, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, athletedb.ErrAthleteNotFound) {
				return results.Failure[*athletedomain.Athlete](&AthleteFailure{
					Reason: fmt.Sprintf("athlete %s not found", id),
				}), nil
			}
			return results.OperationResult[*athletedomain.Athlete, *AthleteFailure]{}, fmt.Errorf("loading athlete: %w", err)
		}
		return results.Success[*athletedomain.Athlete, *AthleteFailure](athlete), nil
	})
}

// ListActive returns all active athletes.
func (s *AthleteService) ListActive(ctx context.Context) ([]athletedomain.Athlete, error) {
	return s.repo.ListActive(ctx)
}
