package shootoffservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// mutate loads the aggregate under a row lock, applies fn, and saves. When fn
// rejects the operation the aggregate is untouched and nothing is written;
// the rejection comes back as a business failure, not an error.
func (s *ShootOffService) mutate(ctx context.Context, id sharedtypes.ShootOffID, fn func(*shootoffdomain.ShootOff) error) (*shootoffdomain.ShootOff, *ShootOffFailure, error) {
	var (
		shootOff *shootoffdomain.ShootOff
		failure  *ShootOffFailure
	)
	err := s.runInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		loaded, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, shootoffdb.ErrShootOffNotFound) {
				failure = &ShootOffFailure{Reason: fmt.Sprintf("shoot-off %s not found", id)}
				return nil
			}
			return err
		}

		if err := fn(loaded); err != nil {
			failure = &ShootOffFailure{Reason: err.Error()}
			return nil
		}

		if err := s.repo.Save(ctx, tx, loaded); err != nil {
			return err
		}
		shootOff = loaded
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return shootOff, failure, nil
}

// Start moves a pending shoot-off to in progress.
func (s *ShootOffService) Start(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
	return withTelemetry(s, ctx, "StartShootOff", func(ctx context.Context) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
		shootOff, failure, err := s.mutate(ctx, id, func(so *shootoffdomain.ShootOff) error {
			return so.Start()
		})
		if err != nil {
			return results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure]{}, err
		}
		if failure != nil {
			return results.Failure[*shootoffdomain.ShootOff](failure), nil
		}

		s.logger.InfoContext(ctx, "Shoot-off started",
			attr.ExtractCorrelationID(ctx),
			attr.ShootOffID("shoot_off_id", id),
		)
		return results.Success[*shootoffdomain.ShootOff, *ShootOffFailure](shootOff), nil
	})
}

// DeclareWinner completes the shoot-off and assigns final places.
func (s *ShootOffService) DeclareWinner(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
	return withTelemetry(s, ctx, "DeclareWinner", func(ctx context.Context) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
		shootOff, failure, err := s.mutate(ctx, id, func(so *shootoffdomain.ShootOff) error {
			_, err := so.DeclareWinner()
			return err
		})
		if err != nil {
			return results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure]{}, err
		}
		if failure != nil {
			return results.Failure[*shootoffdomain.ShootOff](failure), nil
		}

		s.logger.InfoContext(ctx, "Shoot-off winner declared",
			attr.ExtractCorrelationID(ctx),
			attr.ShootOffID("shoot_off_id", id),
			attr.String("winner_id", shootOff.WinnerID.String()),
		)
		return results.Success[*shootoffdomain.ShootOff, *ShootOffFailure](shootOff), nil
	})
}

// Cancel abandons a shoot-off. Captured round data stays for audit.
func (s *ShootOffService) Cancel(ctx context.Context, id sharedtypes.ShootOffID) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
	return withTelemetry(s, ctx, "CancelShootOff", func(ctx context.Context) (results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure], error) {
		shootOff, failure, err := s.mutate(ctx, id, func(so *shootoffdomain.ShootOff) error {
			return so.Cancel()
		})
		if err != nil {
			return results.OperationResult[*shootoffdomain.ShootOff, *ShootOffFailure]{}, err
		}
		if failure != nil {
			return results.Failure[*shootoffdomain.ShootOff](failure), nil
		}

		s.logger.InfoContext(ctx, "Shoot-off cancelled",
			attr.ExtractCorrelationID(ctx),
			attr.ShootOffID("shoot_off_id", id),
		)
		return results.Success[*shootoffdomain.ShootOff, *ShootOffFailure](shootOff), nil
	})
}

// ListForTournament returns every shoot-off in a tournament, oldest first.
func (s *ShootOffService) ListForTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]shootoffdomain.ShootOff, error) {
	return s.repo.ListForTournament(ctx, s.idb, tournamentID)
}
