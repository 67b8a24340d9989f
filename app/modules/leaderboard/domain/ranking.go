// Package leaderboarddomain builds tournament standings and detects score
// ties that call for shoot-offs. Both operations are pure over their inputs.
package leaderboarddomain

import (
	"sort"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// Standing is one athlete's row in the tournament leaderboard.
type Standing struct {
	Rank          int                   `json:"rank"`
	AthleteID     sharedtypes.AthleteID `json:"athlete_id"`
	TotalTargets  int                   `json:"total_targets"`
	TotalPossible int                   `json:"total_possible"`
	Percentage    float64               `json:"percentage"`
}

// Band is a run of standings sharing one total score. StartRank is the rank
// every athlete in the band holds; ranks after the band continue from
// StartRank plus the band size.
type Band struct {
	StartRank    int
	TotalTargets int
	Standings    []Standing
}

// BuildStandings aggregates total targets per athlete across every shoot in
// the tournament and ranks them descending. Athletes tied on total targets
// share a rank; the next distinct total resumes counting from the full number
// of athletes above it. Only athletes with at least one shoot appear.
func BuildStandings(shoots []shootdomain.Shoot) []Standing {
	type totals struct {
		targets  int
		possible int
	}
	byAthlete := make(map[sharedtypes.AthleteID]*totals)
	for _, s := range shoots {
		t, ok := byAthlete[s.AthleteID]
		if !ok {
			t = &totals{}
			byAthlete[s.AthleteID] = t
		}
		shootTotals := s.Totals()
		t.targets += shootTotals.TotalTargets
		t.possible += shootTotals.TotalPossible
	}

	standings := make([]Standing, 0, len(byAthlete))
	for athleteID, t := range byAthlete {
		standing := Standing{
			AthleteID:     athleteID,
			TotalTargets:  t.targets,
			TotalPossible: t.possible,
		}
		if t.possible > 0 {
			standing.Percentage = 100 * float64(t.targets) / float64(t.possible)
		}
		standings = append(standings, standing)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalTargets != standings[j].TotalTargets {
			return standings[i].TotalTargets > standings[j].TotalTargets
		}
		return standings[i].AthleteID.String() < standings[j].AthleteID.String()
	})

	for i := range standings {
		if i > 0 && standings[i].TotalTargets == standings[i-1].TotalTargets {
			standings[i].Rank = standings[i-1].Rank
			continue
		}
		standings[i].Rank = i + 1
	}
	return standings
}

// Bands groups consecutive standings with equal totals.
func Bands(standings []Standing) []Band {
	var bands []Band
	for _, s := range standings {
		if len(bands) > 0 && bands[len(bands)-1].TotalTargets == s.TotalTargets {
			last := &bands[len(bands)-1]
			last.Standings = append(last.Standings, s)
			continue
		}
		bands = append(bands, Band{
			StartRank:    s.Rank,
			TotalTargets: s.TotalTargets,
			Standings:    []Standing{s},
		})
	}
	return bands
}
