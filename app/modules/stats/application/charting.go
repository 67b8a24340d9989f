package statsservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	statsdomain "github.com/clay-target-club/claybot/app/modules/stats/domain"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// RenderTrendChart renders an athlete's percentage-over-time history in one
// discipline as a PNG. At least two shoots are needed to draw a line.
func (s *StatsService) RenderTrendChart(ctx context.Context, req TrendChartRequest) (results.OperationResult[*TrendChart, *StatsFailure], error) {
	return withTelemetry(s, ctx, "RenderTrendChart", func(ctx context.Context) (results.OperationResult[*TrendChart, *StatsFailure], error) {
		shoots, err := s.shoots.GetForAthleteDiscipline(ctx, req.AthleteID, req.DisciplineID, nil)
		if err != nil {
			return results.OperationResult[*TrendChart, *StatsFailure]{}, fmt.Errorf("loading shoots: %w", err)
		}
		if len(shoots) < 2 {
			return results.Failure[*TrendChart](&StatsFailure{
				Reason: "at least two shoots are needed to chart a trend",
			}), nil
		}

		stats := statsdomain.BuildDisciplineStats(shoots)
		var stat statsdomain.DisciplineStat
		for _, candidate := range stats {
			if candidate.DisciplineID == req.DisciplineID {
				stat = candidate
				break
			}
		}

		xValues := make([]float64, 0, len(stat.History))
		yValues := make([]float64, 0, len(stat.History))
		for i, point := range stat.History {
			xValues = append(xValues, float64(i+1))
			yValues = append(yValues, point.Percentage)
		}

		graph := chart.Chart{
			Title: fmt.Sprintf("%s hit percentage", req.DisciplineID),
			XAxis: chart.XAxis{Name: "Shoot"},
			YAxis: chart.YAxis{
				Name:  "Percentage",
				Range: &chart.ContinuousRange{Min: 0, Max: 100},
			},
			Series: []chart.Series{
				chart.ContinuousSeries{
					XValues: xValues,
					YValues: yValues,
				},
			},
		}

		var buf bytes.Buffer
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return results.OperationResult[*TrendChart, *StatsFailure]{}, fmt.Errorf("rendering chart: %w", err)
		}

		s.logger.InfoContext(ctx, "Trend chart rendered",
			attr.ExtractCorrelationID(ctx),
			attr.AthleteID("athlete_id", req.AthleteID),
			attr.String("discipline_id", string(req.DisciplineID)),
			attr.Int("points", len(stat.History)),
		)

		return results.Success[*TrendChart, *StatsFailure](&TrendChart{
			Trend: stat.Trend,
			PNG:   buf.Bytes(),
		}), nil
	})
}
