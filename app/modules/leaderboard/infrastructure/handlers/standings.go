package leaderboardhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardevents "github.com/clay-target-club/claybot/app/modules/leaderboard/events"
	shootevents "github.com/clay-target-club/claybot/app/modules/shoot/events"
	shootoffevents "github.com/clay-target-club/claybot/app/modules/shootoff/events"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

func (h *LeaderboardHandlers) rebuild(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]handlerwrapper.Result, error) {
	result, err := h.service.RebuildStandings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: leaderboardevents.StandingsRebuildFailedV1,
			Payload: leaderboardevents.StandingsRebuildFailedPayloadV1{
				TournamentID: tournamentID,
				Reason:       (*result.Failure).Reason,
			},
		}}, nil
	}

	standings := *result.Success
	return []handlerwrapper.Result{{
		Topic: leaderboardevents.StandingsRebuiltV1,
		Payload: leaderboardevents.StandingsRebuiltPayloadV1{
			TournamentID: standings.TournamentID,
			Standings:    standings.Standings,
			GeneratedAt:  standings.GeneratedAt,
		},
	}}, nil
}

// HandleStandingsRebuildRequested rebuilds and persists the standings.
func (h *LeaderboardHandlers) HandleStandingsRebuildRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleStandingsRebuildRequested",
		func(ctx context.Context, payload *leaderboardevents.StandingsRebuildRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			return h.rebuild(ctx, payload.TournamentID)
		})
}

// HandleScoresLogged refreshes the standings whenever a shoot is logged, so
// the leaderboard tracks score entry without operator involvement.
func (h *LeaderboardHandlers) HandleScoresLogged() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleScoresLogged",
		func(ctx context.Context, payload *shootevents.ScoresLoggedPayloadV1) ([]handlerwrapper.Result, error) {
			return h.rebuild(ctx, payload.TournamentID)
		})
}

// HandleShootOffWinnerDeclared refreshes the standings after a shoot-off
// completes; the resolved tie no longer surfaces as a candidate.
func (h *LeaderboardHandlers) HandleShootOffWinnerDeclared() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleShootOffWinnerDeclared",
		func(ctx context.Context, payload *shootoffevents.WinnerDeclaredPayloadV1) ([]handlerwrapper.Result, error) {
			return h.rebuild(ctx, payload.TournamentID)
		})
}
