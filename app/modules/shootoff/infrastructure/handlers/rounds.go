package shootoffhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	shootoffservice "github.com/clay-target-club/claybot/app/modules/shootoff/application"
	shootoffevents "github.com/clay-target-club/claybot/app/modules/shootoff/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleRoundCreateRequested opens the next round.
func (h *ShootOffHandlers) HandleRoundCreateRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleRoundCreateRequested",
		func(ctx context.Context, payload *shootoffevents.RoundCreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.CreateRound(ctx, payload.ShootOffID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootoffevents.RoundCreateFailedV1,
					Payload: shootoffevents.RoundCreateFailedPayloadV1{
						ShootOffID: payload.ShootOffID,
						Reason:     (*result.Failure).Reason,
					},
				}}, nil
			}

			round := (*result.Success).Round
			return []handlerwrapper.Result{{
				Topic: shootoffevents.RoundCreatedV1,
				Payload: shootoffevents.RoundCreatedPayloadV1{
					ShootOffID:  payload.ShootOffID,
					RoundNumber: round.RoundNumber,
					Roster:      round.Roster,
				},
			}}, nil
		})
}

// HandleRoundScoresSubmitRequested records one round's scores.
func (h *ShootOffHandlers) HandleRoundScoresSubmitRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleRoundScoresSubmitRequested",
		func(ctx context.Context, payload *shootoffevents.RoundScoresSubmitRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.SubmitRoundScores(ctx, shootoffservice.SubmitScoresRequest{
				ShootOffID:  payload.ShootOffID,
				RoundNumber: payload.RoundNumber,
				Scores:      payload.Scores,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootoffevents.RoundScoresSubmitFailedV1,
					Payload: shootoffevents.RoundScoresSubmitFailedPayloadV1{
						ShootOffID:  payload.ShootOffID,
						RoundNumber: payload.RoundNumber,
						Reason:      (*result.Failure).Reason,
					},
				}}, nil
			}

			scored := *result.Success
			return []handlerwrapper.Result{{
				Topic: shootoffevents.RoundScoredV1,
				Payload: shootoffevents.RoundScoredPayloadV1{
					ShootOffID:       payload.ShootOffID,
					RoundNumber:      scored.RoundNumber,
					Eliminated:       scored.Eliminated,
					ActiveRemaining:  scored.ActiveRemaining,
					WinnerDeclarable: scored.WinnerDeclarable,
				},
			}}, nil
		})
}
