package shoothandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	shootservice "github.com/clay-target-club/claybot/app/modules/shoot/application"
	shootevents "github.com/clay-target-club/claybot/app/modules/shoot/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleLogScoresRequested records one shoot and publishes the logged or
// failed event.
func (h *ShootHandlers) HandleLogScoresRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleLogScoresRequested",
		func(ctx context.Context, payload *shootevents.LogScoresRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.LogShootScores(ctx, shootservice.LogScoresRequest{
				AthleteID:    payload.AthleteID,
				TournamentID: payload.TournamentID,
				DisciplineID: payload.DisciplineID,
				Date:         payload.Date,
				Scores:       payload.Scores,
				Source:       "event",
				Overwrite:    payload.Overwrite,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootevents.LogScoresFailedV1,
					Payload: shootevents.LogScoresFailedPayloadV1{
						TournamentID: payload.TournamentID,
						AthleteID:    payload.AthleteID,
						DisciplineID: payload.DisciplineID,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			shoot := *result.Success
			totals := shoot.Totals()
			return []handlerwrapper.Result{{
				Topic: shootevents.ScoresLoggedV1,
				Payload: shootevents.ScoresLoggedPayloadV1{
					ShootID:       shoot.ID,
					TournamentID:  shoot.TournamentID,
					AthleteID:     shoot.AthleteID,
					DisciplineID:  shoot.DisciplineID,
					TotalTargets:  totals.TotalTargets,
					TotalPossible: totals.TotalPossible,
					Percentage:    totals.Percentage,
				},
			}}, nil
		})
}
