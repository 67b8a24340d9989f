package statshandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	statsservice "github.com/clay-target-club/claybot/app/modules/stats/application"
	statsevents "github.com/clay-target-club/claybot/app/modules/stats/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleAthleteStatsRequested computes one athlete's aggregates and publishes
// the retrieved or failed event.
func (h *StatsHandlers) HandleAthleteStatsRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleAthleteStatsRequested",
		func(ctx context.Context, payload *statsevents.AthleteStatsRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.GetAthleteStats(ctx, statsservice.AthleteStatsRequest{
				AthleteID: payload.AthleteID,
				From:      payload.From,
				To:        payload.To,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: statsevents.AthleteStatsFailedV1,
					Payload: statsevents.AthleteStatsFailedPayloadV1{
						AthleteID: payload.AthleteID,
						Reason:    (*result.Failure).Reason,
					},
				}}, nil
			}

			return []handlerwrapper.Result{{
				Topic: statsevents.AthleteStatsRetrievedV1,
				Payload: statsevents.AthleteStatsRetrievedPayloadV1{
					AthleteID:   payload.AthleteID,
					Disciplines: (*result.Success).Disciplines,
				},
			}}, nil
		})
}

// HandleDivisionAveragesRequested computes one division's per-discipline
// averages and publishes the retrieved or failed event.
func (h *StatsHandlers) HandleDivisionAveragesRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleDivisionAveragesRequested",
		func(ctx context.Context, payload *statsevents.DivisionAveragesRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.GetDivisionAverages(ctx, statsservice.DivisionAveragesRequest{
				TournamentID: payload.TournamentID,
				Division:     payload.Division,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: statsevents.DivisionAveragesFailedV1,
					Payload: statsevents.DivisionAveragesFailedPayloadV1{
						TournamentID: payload.TournamentID,
						Division:     payload.Division,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			return []handlerwrapper.Result{{
				Topic: statsevents.DivisionAveragesRetrievedV1,
				Payload: statsevents.DivisionAveragesRetrievedPayloadV1{
					TournamentID: (*result.Success).TournamentID,
					Division:     (*result.Success).Division,
					Averages:     (*result.Success).Averages,
				},
			}}, nil
		})
}

// HandleTrendChartRequested renders a trend chart and publishes the rendered
// or failed event.
func (h *StatsHandlers) HandleTrendChartRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleTrendChartRequested",
		func(ctx context.Context, payload *statsevents.TrendChartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.RenderTrendChart(ctx, statsservice.TrendChartRequest{
				AthleteID:    payload.AthleteID,
				DisciplineID: payload.DisciplineID,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: statsevents.TrendChartFailedV1,
					Payload: statsevents.TrendChartFailedPayloadV1{
						AthleteID:    payload.AthleteID,
						DisciplineID: payload.DisciplineID,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			return []handlerwrapper.Result{{
				Topic: statsevents.TrendChartRenderedV1,
				Payload: statsevents.TrendChartRenderedPayloadV1{
					AthleteID:    payload.AthleteID,
					DisciplineID: payload.DisciplineID,
					Trend:        (*result.Success).Trend,
					ChartPNG:     (*result.Success).PNG,
				},
			}}, nil
		})
}
