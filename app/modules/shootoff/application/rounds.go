package shootoffservice

import (
	"context"

	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// CreateRound opens the next round with the current active roster.
func (s *ShootOffService) CreateRound(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*RoundResult, *ShootOffFailure], error) {
	return withTelemetry(s, ctx, "CreateRound", func(ctx context.Context) (results.OperationResult[*RoundResult, *ShootOffFailure], error) {
		var round shootoffdomain.Round
		shootOff, failure, err := s.mutate(ctx, id, func(so *shootoffdomain.ShootOff) error {
			created, err := so.CreateRound()
			if err != nil {
				return err
			}
			round = *created
			return nil
		})
		if err != nil {
			return results.OperationResult[*RoundResult, *ShootOffFailure]{}, err
		}
		if failure != nil {
			return results.Failure[*RoundResult](failure), nil
		}

		s.logger.InfoContext(ctx, "Shoot-off round opened",
			attr.ExtractCorrelationID(ctx),
			attr.ShootOffID("shoot_off_id", id),
			attr.Int("round_number", round.RoundNumber),
			attr.Int("roster_size", len(round.Roster)),
		)
		return results.Success[*RoundResult, *ShootOffFailure](&RoundResult{
			ShootOff: shootOff,
			Round:    round,
		}), nil
	})
}

// SubmitRoundScores records one round's scores and applies elimination.
func (s *ShootOffService) SubmitRoundScores(ctx context.Context, req SubmitScoresRequest) (results.OperationResult[*ScoredRoundResult, *ShootOffFailure], error) {
	return withTelemetry(s, ctx, "SubmitRoundScores", func(ctx context.Context) (results.OperationResult[*ScoredRoundResult, *ShootOffFailure], error) {
		shootOff, failure, err := s.mutate(ctx, req.ShootOffID, func(so *shootoffdomain.ShootOff) error {
			return so.SubmitRoundScores(req.RoundNumber, req.Scores)
		})
		if err != nil {
			return results.OperationResult[*ScoredRoundResult, *ShootOffFailure]{}, err
		}
		if failure != nil {
			return results.Failure[*ScoredRoundResult](failure), nil
		}

		eliminated := make([]sharedtypes.AthleteID, 0)
		for _, p := range shootOff.Participants {
			if p.Eliminated && p.EliminatedRound == req.RoundNumber {
				eliminated = append(eliminated, p.AthleteID)
			}
		}
		active := len(shootOff.ActiveParticipants())

		s.logger.InfoContext(ctx, "Shoot-off round scored",
			attr.ExtractCorrelationID(ctx),
			attr.ShootOffID("shoot_off_id", req.ShootOffID),
			attr.Int("round_number", req.RoundNumber),
			attr.Int("eliminated", len(eliminated)),
			attr.Int("active_remaining", active),
		)
		return results.Success[*ScoredRoundResult, *ShootOffFailure](&ScoredRoundResult{
			ShootOff:         shootOff,
			RoundNumber:      req.RoundNumber,
			Eliminated:       eliminated,
			ActiveRemaining:  active,
			WinnerDeclarable: active == 1,
		}), nil
	})
}
