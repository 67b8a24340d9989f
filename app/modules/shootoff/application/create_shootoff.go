package shootoffservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// CreateShootOff creates a pending shoot-off for a detected tie. The
// tournament's shoot-off config must be valid, enabled, and have a trigger
// covering the contested position; every athlete must exist.
func (s *ShootOffService) CreateShootOff(ctx context.Context, req CreateRequest) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
	return withTelemetry(s, ctx, "CreateShootOff", func(ctx context.Context) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
		tournament, err := s.tournaments.Get(ctx, req.TournamentID)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrTournamentNotFound) {
				return results.Failure[*shootoffdomain.ShootOff](&ShootOffFailure{
					Reason: fmt.Sprintf("tournament %s not found", req.TournamentID),
				}), nil
			}
			return results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure]{}, fmt.Errorf("loading tournament: %w", err)
		}

		cfg := tournament.ShootOffs
		if err := cfg.Validate(); err != nil {
			return results.Failure[*shootoffdomain.ShootOff](&ShootOffFailure{
				Reason: fmt.Sprintf("shoot-off config invalid: %v", err),
			}), nil
		}
		if !cfg.Enabled {
			return results.Failure[*shootoffdomain.ShootOff](&ShootOffFailure{
				Reason: "shoot-offs are disabled for this tournament",
			}), nil
		}
		if !positionTriggered(cfg.Triggers, req.Position) {
			return results.Failure[*shootoffdomain.ShootOff](&ShootOffFailure{
				Reason: fmt.Sprintf("no configured trigger covers position %d", req.Position),
			}), nil
		}

		athletes, err := s.athletes.GetByIDs(ctx, req.AthleteIDs)
		if err != nil {
			return results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure]{}, fmt.Errorf("loading athletes: %w", err)
		}
		if len(athletes) != len(req.AthleteIDs) {
			return results.Failure[*shootoffdomain.ShootOff](&ShootOffFailure{
				Reason: fmt.Sprintf("only %d of %d athletes exist", len(athletes), len(req.AthleteIDs)),
			}), nil
		}

		names := make(map[sharedtypes.AthleteID]string, len(athletes))
		for _, a := range athletes {
			names[a.ID] = a.Name
		}
		participants := make([]shootoffdomain.Participant, 0, len(req.AthleteIDs))
		for _, id := range req.AthleteIDs {
			participants = append(participants, shootoffdomain.Participant{
				AthleteID: id,
				Name:      names[id],
			})
		}

		shootOff, err := shootoffdomain.NewShootOff(
			sharedtypes.ShootOffID(uuid.New()),
			req.TournamentID,
			req.DisciplineID,
			req.Position,
			cfg,
			req.TiedScore,
			participants,
		)
		if err != nil {
			return results.Failure[*shootoffdomain.ShootOff](&ShootOffFailure{Reason: err.Error()}), nil
		}

		if err := s.runInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
			return s.repo.Create(ctx, tx, shootOff)
		}); err != nil {
			return results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure]{}, fmt.Errorf("persisting shoot-off: %w", err)
		}

		s.logger.InfoContext(ctx, "Shoot-off created",
			attr.ExtractCorrelationID(ctx),
			attr.ShootOffID("shoot_off_id", shootOff.ID),
			attr.TournamentID("tournament_id", req.TournamentID),
			attr.Int("position", req.Position),
			attr.Int("participants", len(participants)),
		)

		return results.Success[*shootoffdomain.ShootOff, *ShootOffFailure](shootOff), nil
	})
}

func positionTriggered(triggers []tournamentdomain.Trigger, position int) bool {
	for _, t := range triggers {
		if tournamentdomain.TriggerCoversRank(t, position) {
			return true
		}
	}
	return false
}
