package tournamenthandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	tournamentservice "github.com/clay-target-club/claybot/app/modules/tournament/application"
	tournamentevents "github.com/clay-target-club/claybot/app/modules/tournament/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleUpsertRequested creates or updates a tournament configuration.
func (h *TournamentHandlers) HandleUpsertRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleUpsertRequested",
		func(ctx context.Context, payload *tournamentevents.UpsertRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.UpsertTournament(ctx, tournamentservice.UpsertRequest{
				TournamentID: payload.TournamentID,
				Name:         payload.Name,
				StartDate:    payload.StartDate,
				EndDate:      payload.EndDate,
				Disciplines:  payload.Disciplines,
				ShootOffs:    payload.ShootOffs,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: tournamentevents.UpsertFailedV1,
					Payload: tournamentevents.UpsertFailedPayloadV1{
						Name:   payload.Name,
						Reason: (*result.Failure).Reason,
					},
				}}, nil
			}

			tournament := *result.Success
			return []handlerwrapper.Result{{
				Topic: tournamentevents.UpsertedV1,
				Payload: tournamentevents.UpsertedPayloadV1{
					TournamentID: tournament.ID,
					Name:         tournament.Name,
					Status:       tournament.Status,
				},
			}}, nil
		})
}

// HandleStatusUpdateRequested applies a lifecycle transition.
func (h *TournamentHandlers) HandleStatusUpdateRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleStatusUpdateRequested",
		func(ctx context.Context, payload *tournamentevents.StatusUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.UpdateStatus(ctx, payload.TournamentID, payload.Status)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: tournamentevents.StatusUpdateFailedV1,
					Payload: tournamentevents.StatusUpdateFailedPayloadV1{
						TournamentID: payload.TournamentID,
						Status:       payload.Status,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			change := *result.Success
			return []handlerwrapper.Result{{
				Topic: tournamentevents.StatusUpdatedV1,
				Payload: tournamentevents.StatusUpdatedPayloadV1{
					TournamentID: change.TournamentID,
					From:         change.From,
					To:           change.To,
				},
			}}, nil
		})
}

// HandleGetRequested returns one tournament configuration.
func (h *TournamentHandlers) HandleGetRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleGetRequested",
		func(ctx context.Context, payload *tournamentevents.GetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.GetTournament(ctx, payload.TournamentID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: tournamentevents.GetFailedV1,
					Payload: tournamentevents.GetFailedPayloadV1{
						TournamentID: payload.TournamentID,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			tournament := *result.Success
			return []handlerwrapper.Result{{
				Topic: tournamentevents.RetrievedV1,
				Payload: tournamentevents.RetrievedPayloadV1{
					TournamentID: tournament.ID,
					Name:         tournament.Name,
					StartDate:    tournament.StartDate,
					EndDate:      tournament.EndDate,
					Status:       tournament.Status,
					Disciplines:  tournament.Disciplines,
					ShootOffs:    tournament.ShootOffs,
				},
			}}, nil
		})
}
