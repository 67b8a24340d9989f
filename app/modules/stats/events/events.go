// Package statsevents defines the stats module's event topics and payloads.
package statsevents

import (
	"time"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	statsdomain "github.com/clay-target-club/claybot/app/modules/stats/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

const (
	AthleteStatsRequestedV1 = "stats.athlete.requested.v1"
	AthleteStatsRetrievedV1 = "stats.athlete.retrieved.v1"
	AthleteStatsFailedV1    = "stats.athlete.failed.v1"

	DivisionAveragesRequestedV1 = "stats.division.averages.requested.v1"
	DivisionAveragesRetrievedV1 = "stats.division.averages.retrieved.v1"
	DivisionAveragesFailedV1    = "stats.division.averages.failed.v1"

	TrendChartRequestedV1 = "stats.trend.chart.requested.v1"
	TrendChartRenderedV1  = "stats.trend.chart.rendered.v1"
	TrendChartFailedV1    = "stats.trend.chart.failed.v1"
)

// AthleteStatsRequestedPayloadV1 asks for one athlete's aggregates, optionally
// windowed.
type AthleteStatsRequestedPayloadV1 struct {
	AthleteID sharedtypes.AthleteID `json:"athlete_id"`
	From      *time.Time            `json:"from,omitempty"`
	To        *time.Time            `json:"to,omitempty"`
}

// AthleteStatsRetrievedPayloadV1 carries the computed aggregates.
type AthleteStatsRetrievedPayloadV1 struct {
	AthleteID   sharedtypes.AthleteID        `json:"athlete_id"`
	Disciplines []statsdomain.DisciplineStat `json:"disciplines"`
}

// AthleteStatsFailedPayloadV1 reports why stats could not be computed.
type AthleteStatsFailedPayloadV1 struct {
	AthleteID sharedtypes.AthleteID `json:"athlete_id"`
	Reason    string                `json:"reason"`
}

// DivisionAveragesRequestedPayloadV1 asks for one division's per-discipline
// averages over one tournament.
type DivisionAveragesRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Division     athletedomain.Division   `json:"division"`
}

// DivisionAveragesRetrievedPayloadV1 carries the division's per-discipline
// averages.
type DivisionAveragesRetrievedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID                                   `json:"tournament_id"`
	Division     athletedomain.Division                                     `json:"division"`
	Averages     map[sharedtypes.DisciplineID]statsdomain.DisciplineAverage `json:"averages"`
}

// DivisionAveragesFailedPayloadV1 reports why averages could not be computed.
type DivisionAveragesFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Division     athletedomain.Division   `json:"division"`
	Reason       string                   `json:"reason"`
}

// TrendChartRequestedPayloadV1 asks for a rendered percentage-over-time chart.
type TrendChartRequestedPayloadV1 struct {
	AthleteID    sharedtypes.AthleteID    `json:"athlete_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
}

// TrendChartRenderedPayloadV1 carries the rendered PNG.
type TrendChartRenderedPayloadV1 struct {
	AthleteID    sharedtypes.AthleteID    `json:"athlete_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	Trend        statsdomain.Trend        `json:"trend"`
	ChartPNG     []byte                   `json:"chart_png"`
}

// TrendChartFailedPayloadV1 reports why a chart could not be rendered.
type TrendChartFailedPayloadV1 struct {
	AthleteID    sharedtypes.AthleteID    `json:"athlete_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	Reason       string                   `json:"reason"`
}
