package shootoffhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	shootoffevents "github.com/clay-target-club/claybot/app/modules/shootoff/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleStartRequested moves a pending shoot-off to in progress.
func (h *ShootOffHandlers) HandleStartRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleStartRequested",
		func(ctx context.Context, payload *shootoffevents.StartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.Start(ctx, payload.ShootOffID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootoffevents.StartFailedV1,
					Payload: shootoffevents.StartFailedPayloadV1{
						ShootOffID: payload.ShootOffID,
						Reason:     (*result.Failure).Reason,
					},
				}}, nil
			}

			shootOff := *result.Success
			return []handlerwrapper.Result{{
				Topic: shootoffevents.StartedV1,
				Payload: shootoffevents.StartedPayloadV1{
					ShootOffID:   shootOff.ID,
					TournamentID: shootOff.TournamentID,
				},
			}}, nil
		})
}

// HandleWinnerDeclareRequested completes the shoot-off and publishes the
// final places.
func (h *ShootOffHandlers) HandleWinnerDeclareRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleWinnerDeclareRequested",
		func(ctx context.Context, payload *shootoffevents.WinnerDeclareRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.DeclareWinner(ctx, payload.ShootOffID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootoffevents.WinnerDeclareFailedV1,
					Payload: shootoffevents.WinnerDeclareFailedPayloadV1{
						ShootOffID: payload.ShootOffID,
						Reason:     (*result.Failure).Reason,
					},
				}}, nil
			}

			shootOff := *result.Success
			return []handlerwrapper.Result{{
				Topic: shootoffevents.WinnerDeclaredV1,
				Payload: shootoffevents.WinnerDeclaredPayloadV1{
					ShootOffID:   shootOff.ID,
					TournamentID: shootOff.TournamentID,
					WinnerID:     *shootOff.WinnerID,
					Participants: shootOff.Participants,
				},
			}}, nil
		})
}

// HandleCancelRequested abandons a shoot-off.
func (h *ShootOffHandlers) HandleCancelRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleCancelRequested",
		func(ctx context.Context, payload *shootoffevents.CancelRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.Cancel(ctx, payload.ShootOffID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootoffevents.CancelFailedV1,
					Payload: shootoffevents.CancelFailedPayloadV1{
						ShootOffID: payload.ShootOffID,
						Reason:     (*result.Failure).Reason,
					},
				}}, nil
			}

			shootOff := *result.Success
			return []handlerwrapper.Result{{
				Topic: shootoffevents.CancelledV1,
				Payload: shootoffevents.CancelledPayloadV1{
					ShootOffID:   shootOff.ID,
					TournamentID: shootOff.TournamentID,
				},
			}}, nil
		})
}
