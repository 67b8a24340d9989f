package leaderboardhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardevents "github.com/clay-target-club/claybot/app/modules/leaderboard/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleTieDetectRequested runs a tie detection pass and publishes the
// candidates. Actually holding a shoot-off stays an operator decision.
func (h *LeaderboardHandlers) HandleTieDetectRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleTieDetectRequested",
		func(ctx context.Context, payload *leaderboardevents.TieDetectRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.DetectTies(ctx, payload.TournamentID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: leaderboardevents.TieDetectFailedV1,
					Payload: leaderboardevents.TieDetectFailedPayloadV1{
						TournamentID: payload.TournamentID,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			return []handlerwrapper.Result{{
				Topic: leaderboardevents.TiesDetectedV1,
				Payload: leaderboardevents.TiesDetectedPayloadV1{
					TournamentID: payload.TournamentID,
					Candidates:   *result.Success,
				},
			}}, nil
		})
}
