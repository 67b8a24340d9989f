package statsservice

import (
	"context"
	"time"

	statsdomain "github.com/clay-target-club/claybot/app/modules/stats/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// Service defines the operations offered by the stats module.
type Service interface {
	GetAthleteStats(ctx context.Context, req AthleteStatsRequest) (results.OperationResult[*AthleteStats, *StatsFailure], error)
	GetDivisionAverages(ctx context.Context, req DivisionAveragesRequest) (results.OperationResult[*DivisionAverages, *StatsFailure], error)
	RenderTrendChart(ctx context.Context, req TrendChartRequest) (results.OperationResult[*TrendChart, *StatsFailure], error)
}

// AthleteStatsRequest selects an athlete and an optional date window.
type AthleteStatsRequest struct {
	AthleteID sharedtypes.AthleteID
	From      *time.Time
	To        *time.Time
}

// AthleteStats is one athlete's computed aggregates across disciplines.
type AthleteStats struct {
	AthleteID   sharedtypes.AthleteID        `json:"athlete_id"`
	Disciplines []statsdomain.DisciplineStat `json:"disciplines"`
}

// TrendChartRequest selects the history to chart.
type TrendChartRequest struct {
	AthleteID    sharedtypes.AthleteID
	DisciplineID sharedtypes.DisciplineID
}

// TrendChart is a rendered percentage-over-time chart.
type TrendChart struct {
	Trend statsdomain.Trend
	PNG   []byte
}

// StatsFailure is the business-failure payload for stats operations.
type StatsFailure struct {
	Reason string `json:"reason"`
}
