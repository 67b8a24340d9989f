package athleteservice

import (
	"context"
	"fmt"
	"strings"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

var validGrades = map[athletedomain.Grade]struct{}{
	athletedomain.Grade5th:       {},
	athletedomain.Grade6th:       {},
	athletedomain.Grade7th:       {},
	athletedomain.Grade8th:       {},
	athletedomain.GradeFreshman:  {},
	athletedomain.GradeSophomore: {},
	athletedomain.GradeJunior:    {},
	athletedomain.GradeSenior:    {},
	athletedomain.GradeCollege:   {},
}

var validDivisions = map[athletedomain.Division]struct{}{
	athletedomain.DivisionNovice:        {},
	athletedomain.DivisionIntermediate:  {},
	athletedomain.DivisionJuniorVarsity: {},
	athletedomain.DivisionVarsity:       {},
	athletedomain.DivisionCollegiate:    {},
}

// UpsertAthlete creates or updates an athlete record. The calculated division
// is never stored; it is derived on read so grade edits take effect
// immediately.
func (s *AthleteService) UpsertAthlete(ctx context.Context, req UpsertRequest) (results.OperationResult[*athletedomain.Athlete, *AthleteFailure], error) {
	return withTelemetry(s, ctx, "UpsertAthlete", func(ctx context.Context) (results.OperationResult[*athletedomain.Athlete, *AthleteFailure], error) {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return results.Failure[*athletedomain.Athlete](&AthleteFailure{Reason: "athlete name is required"}), nil
		}
		if _, ok := validGrades[req.Grade]; !ok {
			return results.Failure[*athletedomain.Athlete](&AthleteFailure{
				Reason: fmt.Sprintf("unknown grade %q", req.Grade),
			}), nil
		}
		if req.DivisionOverride != nil {
			if _, ok := validDivisions[*req.DivisionOverride]; !ok {
				return results.Failure[*athletedomain.Athlete](&AthleteFailure{
					Reason: fmt.Sprintf("unknown division override %q", *req.DivisionOverride),
				}), nil
			}
		}

		id := req.AthleteID
		if id == (sharedtypes.AthleteID{}) {
			id = sharedtypes.NewAthleteID()
		}

		athlete := &athletedomain.Athlete{
			ID:                   id,
			Name:                 name,
			TeamID:               req.TeamID,
			Grade:                req.Grade,
			FirstYearCompetition: req.FirstYearCompetition,
			DivisionOverride:     req.DivisionOverride,
			IsActive:             req.IsActive,
		}
		if err := s.repo.Upsert(ctx, athlete); err != nil {
			return results.OperationResult[*athletedomain.Athlete, *AthleteFailure]{}, fmt.Errorf("persisting athlete: %w", err)
		}

		s.logger.InfoContext(ctx, "Athlete upserted",
			attr.ExtractCorrelationID(ctx),
			attr.AthleteID("athlete_id", athlete.ID),
			attr.String("effective_division", string(athlete.EffectiveDivision())),
		)
		return results.Success[*athletedomain.Athlete, *AthleteFailure](athlete), nil
	})
}
