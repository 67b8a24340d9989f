package tournamentservice

import (
	"context"
	"errors"
	"fmt"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// UpdateStatus moves a tournament through its lifecycle. Illegal transitions
// and lost races both come back as business failures.
func (s *TournamentService) UpdateStatus(ctx context.Context, id sharedtypes.TournamentID, to tournamentdomain.Status) (results.OperationResult[*StatusChange, *TournamentFailure], error) {
	return withTelemetry(s, ctx, "UpdateTournamentStatus", func(ctx context.Context) (results.OperationResult[*StatusChange, *TournamentFailure], error) {
		tournament, err := s.repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrTournamentNotFound) {
				return results.Failure[*StatusChange](&TournamentFailure{
					Reason: fmt.Sprintf("tournament %s not found", id),
				}), nil
			}
			return results.OperationResult[*StatusChange, *TournamentFailure]{}, fmt.Errorf("loading tournament: %w", err)
		}

		from := tournament.Status
		if !tournamentdomain.CanTransition(from, to) {
			return results.Failure[*StatusChange](&TournamentFailure{
				Reason: fmt.Sprintf("illegal status transition %s -> %s", from, to),
			}), nil
		}

		if err := s.repo.UpdateStatus(ctx, id, from, to); err != nil {
			return results.Failure[*StatusChange](&TournamentFailure{Reason: err.Error()}), nil
		}

		s.logger.InfoContext(ctx, "Tournament status updated",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", id),
			attr.String("from", string(from)),
			attr.String("to", string(to)),
		)
		return results.Success[*StatusChange, *TournamentFailure](&StatusChange{
			TournamentID: id,
			From:         from,
			To:           to,
		}), nil
	})
}

// GetTournament returns one tournament configuration.
func (s *TournamentService) GetTournament(ctx context.Context, id sharedtypes.TournamentID) (results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure], error) {
	return withTelemetry(s, ctx, "GetTournament", func(ctx context.Context) (results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure], error) {
		tournament, err := s.repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrTournamentNotFound) {
				return results.Failure[*tournamentdomain.Tournament](&TournamentFailure{
					Reason: fmt.Sprintf("tournament %s not found", id),
				}), nil
			}
			return results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure]{}, fmt.Errorf("loading tournament: %w", err)
		}
		return results.Success[*tournamentdomain.Tournament, *TournamentFailure](tournament), nil
	})
}
