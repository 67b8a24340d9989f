package leaderboardhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardevents "github.com/clay-target-club/claybot/app/modules/leaderboard/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleExportRequested renders the current standings snapshot to XLSX.
func (h *LeaderboardHandlers) HandleExportRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleExportRequested",
		func(ctx context.Context, payload *leaderboardevents.ExportRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.ExportStandings(ctx, payload.TournamentID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: leaderboardevents.ExportFailedV1,
					Payload: leaderboardevents.ExportFailedPayloadV1{
						TournamentID: payload.TournamentID,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			return []handlerwrapper.Result{{
				Topic: leaderboardevents.ExportedV1,
				Payload: leaderboardevents.ExportedPayloadV1{
					TournamentID: payload.TournamentID,
					Workbook:     *result.Success,
				},
			}}, nil
		})
}
