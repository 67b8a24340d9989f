// Package shootdomain holds shoots, their per-station scores, and the score
// normalizer. Totals are never stored; they are recomputed from the station
// scores on every read.
package shootdomain

import (
	"fmt"
	"time"

	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// StationScore is one station (or round) entry inside a shoot.
type StationScore struct {
	Station  int `json:"station"`
	Hits     int `json:"hits"`
	Possible int `json:"possible"`
}

// Shoot is one athlete's attempt at one discipline in one tournament on one
// date.
type Shoot struct {
	ID           sharedtypes.ShootID
	AthleteID    sharedtypes.AthleteID
	TournamentID sharedtypes.TournamentID
	DisciplineID sharedtypes.DisciplineID
	Date         time.Time
	Scores       []StationScore
}

// Totals is the normalized projection of a shoot's scores.
type Totals struct {
	TotalTargets  int
	TotalPossible int
	Percentage    float64
}

// Normalize computes a shoot's totals from its station scores. Pure; order
// of entries does not matter. Zero possible targets yields 0%, not an error.
func Normalize(scores []StationScore) Totals {
	var t Totals
	for _, s := range scores {
		t.TotalTargets += s.Hits
		t.TotalPossible += s.Possible
	}
	if t.TotalPossible > 0 {
		t.Percentage = 100 * float64(t.TotalTargets) / float64(t.TotalPossible)
	}
	return t
}

// Totals returns the shoot's normalized totals. Always recomputed; callers
// must never trust a stored percentage.
func (s Shoot) Totals() Totals {
	return Normalize(s.Scores)
}

// ValidateScores rejects malformed station entries.
func ValidateScores(scores []StationScore) error {
	if len(scores) == 0 {
		return fmt.Errorf("shoot has no station scores")
	}
	for _, s := range scores {
		if s.Possible < 0 {
			return fmt.Errorf("station %d: possible targets %d is negative", s.Station, s.Possible)
		}
		if s.Hits < 0 {
			return fmt.Errorf("station %d: hits %d is negative", s.Station, s.Hits)
		}
		if s.Hits > s.Possible {
			return fmt.Errorf("station %d: hits %d exceeds possible %d", s.Station, s.Hits, s.Possible)
		}
	}
	return nil
}
