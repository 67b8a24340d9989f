package athletehandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	athleteservice "github.com/clay-target-club/claybot/app/modules/athlete/application"
	athleteevents "github.com/clay-target-club/claybot/app/modules/athlete/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleUpsertRequested creates or updates an athlete record.
func (h *AthleteHandlers) HandleUpsertRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleUpsertRequested",
		func(ctx context.Context, payload *athleteevents.UpsertRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.UpsertAthlete(ctx, athleteservice.UpsertRequest{
				AthleteID:            payload.AthleteID,
				Name:                 payload.Name,
				TeamID:               payload.TeamID,
				Grade:                payload.Grade,
				FirstYearCompetition: payload.FirstYearCompetition,
				DivisionOverride:     payload.DivisionOverride,
				IsActive:             payload.IsActive,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: athleteevents.UpsertFailedV1,
					Payload: athleteevents.UpsertFailedPayloadV1{
						Name:   payload.Name,
						Reason: (*result.Failure).Reason,
					},
				}}, nil
			}

			athlete := *result.Success
			return []handlerwrapper.Result{{
				Topic: athleteevents.UpsertedV1,
				Payload: athleteevents.UpsertedPayloadV1{
					AthleteID:          athlete.ID,
					Name:               athlete.Name,
					CalculatedDivision: athlete.CalculatedDivision(),
					EffectiveDivision:  athlete.EffectiveDivision(),
				},
			}}, nil
		})
}

// HandleGetRequested returns one athlete with its division classification.
func (h *AthleteHandlers) HandleGetRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleGetRequested",
		func(ctx context.Context, payload *athleteevents.GetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.GetAthlete(ctx, payload.AthleteID)
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: athleteevents.GetFailedV1,
					Payload: athleteevents.GetFailedPayloadV1{
						AthleteID: payload.AthleteID,
						Reason:    (*result.Failure).Reason,
					},
				}}, nil
			}

			athlete := *result.Success
			return []handlerwrapper.Result{{
				Topic: athleteevents.RetrievedV1,
				Payload: athleteevents.RetrievedPayloadV1{
					AthleteID:            athlete.ID,
					Name:                 athlete.Name,
					Grade:                athlete.Grade,
					FirstYearCompetition: athlete.FirstYearCompetition,
					DivisionOverride:     athlete.DivisionOverride,
					CalculatedDivision:   athlete.CalculatedDivision(),
					EffectiveDivision:    athlete.EffectiveDivision(),
					IsActive:             athlete.IsActive,
				},
			}}, nil
		})
}
