package statsdomain

import (
	"sort"
	"time"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// ShootPoint is one shoot's contribution to an athlete's history.
type ShootPoint struct {
	Date       time.Time `json:"date"`
	Percentage float64   `json:"percentage"`
}

// DisciplineStat aggregates one athlete's history in one discipline.
// Percentages are recomputed from station scores, never read from storage.
type DisciplineStat struct {
	DisciplineID      sharedtypes.DisciplineID `json:"discipline_id"`
	ShootCount        int                      `json:"shoot_count"`
	TotalTargets      int                      `json:"total_targets"`
	TotalPossible     int                      `json:"total_possible"`
	AveragePercentage float64                  `json:"average_percentage"`
	BestPercentage    float64                  `json:"best_percentage"`
	Trend             Trend                    `json:"trend"`
	History           []ShootPoint             `json:"history"`
}

// BuildDisciplineStats groups an athlete's shoots by discipline and computes
// each discipline's aggregates. Input order does not matter; history is
// sorted chronologically before the trend is classified. Output is ordered by
// discipline id for stable presentation.
func BuildDisciplineStats(shoots []shootdomain.Shoot) []DisciplineStat {
	byDiscipline := make(map[sharedtypes.DisciplineID][]shootdomain.Shoot)
	for _, s := range shoots {
		byDiscipline[s.DisciplineID] = append(byDiscipline[s.DisciplineID], s)
	}

	stats := make([]DisciplineStat, 0, len(byDiscipline))
	for disciplineID, group := range byDiscipline {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		stat := DisciplineStat{
			DisciplineID: disciplineID,
			ShootCount:   len(group),
			History:      make([]ShootPoint, 0, len(group)),
		}

		percentages := make([]float64, 0, len(group))
		var percentageSum float64
		for _, s := range group {
			totals := s.Totals()
			stat.TotalTargets += totals.TotalTargets
			stat.TotalPossible += totals.TotalPossible
			percentageSum += totals.Percentage
			percentages = append(percentages, totals.Percentage)
			if totals.Percentage > stat.BestPercentage {
				stat.BestPercentage = totals.Percentage
			}
			stat.History = append(stat.History, ShootPoint{Date: s.Date, Percentage: totals.Percentage})
		}

		stat.AveragePercentage = percentageSum / float64(len(group))
		stat.Trend = ClassifyTrend(percentages)
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].DisciplineID < stats[j].DisciplineID
	})
	return stats
}

// DisciplineAverage is the unweighted mean shoot percentage for one
// discipline within a division.
type DisciplineAverage struct {
	ShootCount int     `json:"shoot_count"`
	Average    float64 `json:"average"`
}

// BuildDivisionAverages computes one division's per-discipline averages from
// a set of shoots and the athletes that produced them. Only shoots whose
// athlete's effective division matches are counted; each shoot counts once,
// unweighted by its possible targets. Callers pass a concrete division, never
// DivisionNone.
func BuildDivisionAverages(division athletedomain.Division, shoots []shootdomain.Shoot, athletes map[sharedtypes.AthleteID]athletedomain.Athlete) map[sharedtypes.DisciplineID]DisciplineAverage {
	type acc struct {
		sum   float64
		count int
	}
	byDiscipline := make(map[sharedtypes.DisciplineID]*acc)

	for _, s := range shoots {
		athlete, ok := athletes[s.AthleteID]
		if !ok || athlete.EffectiveDivision() != division {
			continue
		}
		a, ok := byDiscipline[s.DisciplineID]
		if !ok {
			a = &acc{}
			byDiscipline[s.DisciplineID] = a
		}
		a.sum += s.Totals().Percentage
		a.count++
	}

	averages := make(map[sharedtypes.DisciplineID]DisciplineAverage, len(byDiscipline))
	for disciplineID, a := range byDiscipline {
		averages[disciplineID] = DisciplineAverage{
			ShootCount: a.count,
			Average:    a.sum / float64(a.count),
		}
	}
	return averages
}
