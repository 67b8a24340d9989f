package shootoffhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	shootoffservice "github.com/clay-target-club/claybot/app/modules/shootoff/application"
	shootoffevents "github.com/clay-target-club/claybot/app/modules/shootoff/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleCreateRequested creates a pending shoot-off for a detected tie.
func (h *ShootOffHandlers) HandleCreateRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleCreateRequested",
		func(ctx context.Context, payload *shootoffevents.CreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.CreateShootOff(ctx, shootoffservice.CreateRequest{
				TournamentID: payload.TournamentID,
				DisciplineID: payload.DisciplineID,
				Position:     payload.Position,
				TiedScore:    payload.TiedScore,
				AthleteIDs:   payload.AthleteIDs,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootoffevents.CreateFailedV1,
					Payload: shootoffevents.CreateFailedPayloadV1{
						TournamentID: payload.TournamentID,
						Position:     payload.Position,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			shootOff := *result.Success
			return []handlerwrapper.Result{{
				Topic: shootoffevents.CreatedV1,
				Payload: shootoffevents.CreatedPayloadV1{
					ShootOffID:   shootOff.ID,
					TournamentID: shootOff.TournamentID,
					DisciplineID: shootOff.DisciplineID,
					Position:     shootOff.Position,
					Participants: len(shootOff.Participants),
				},
			}}, nil
		})
}
