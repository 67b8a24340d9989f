package tournamentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// UpsertTournament creates or updates a tournament configuration. An invalid
// shoot-off config is stored as-is and only logged: reporting and standings
// must keep working, and shoot-off creation rejects the broken config at the
// point of use.
func (s *TournamentService) UpsertTournament(ctx context.Context, req UpsertRequest) (results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure], error) {
	return withTelemetry(s, ctx, "UpsertTournament", func(ctx context.Context) (results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure], error) {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return results.Failure[*tournamentdomain.Tournament](&TournamentFailure{Reason: "tournament name is required"}), nil
		}

		status := tournamentdomain.StatusUpcoming
		id := req.TournamentID
		if id == (sharedtypes.TournamentID{}) {
			id = sharedtypes.NewTournamentID()
		} else {
			existing, err := s.repo.Get(ctx, id)
			switch {
			case err == nil:
				status = existing.Status
			case errors.Is(err, tournamentdb.ErrTournamentNotFound):
				// explicit ID on a new tournament is fine
			default:
				return results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure]{}, fmt.Errorf("loading tournament: %w", err)
			}
		}

		tournament := &tournamentdomain.Tournament{
			ID:          id,
			Name:        name,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Status:      status,
			Disciplines: req.Disciplines,
			ShootOffs:   req.ShootOffs,
		}
		if err := tournament.Validate(); err != nil {
			return results.Failure[*tournamentdomain.Tournament](&TournamentFailure{Reason: err.Error()}), nil
		}
		if err := tournament.ShootOffs.Validate(); err != nil {
			s.logger.WarnContext(ctx, "Tournament stored with invalid shoot-off config",
				attr.ExtractCorrelationID(ctx),
				attr.TournamentID("tournament_id", id),
				attr.Error(err),
			)
		}

		if err := s.repo.Upsert(ctx, tournament); err != nil {
			return results.OperationResult[*tournamentdomain.Tournament, *TournamentFailure]{}, fmt.Errorf("persisting tournament: %w", err)
		}

		s.logger.InfoContext(ctx, "Tournament upserted",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", id),
			attr.String("name", name),
		)
		return results.Success[*tournamentdomain.Tournament, *TournamentFailure](tournament), nil
	})
}
