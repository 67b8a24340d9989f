// Package tournamentdomain holds tournament configuration: status lifecycle,
// per-discipline setup, and the shoot-off configuration consumed by tie
// detection and the shoot-off module. Tournament CRUD lives outside this
// service.
package tournamentdomain

import (
	"fmt"
	"time"

	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// Status is the tournament lifecycle state.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusActive     Status = "active"
	StatusFinalizing Status = "finalizing"
	StatusCompleted  Status = "completed"
)

// statusTransitions is the legal transition table.
var statusTransitions = map[Status][]Status{
	StatusUpcoming:   {StatusActive},
	StatusActive:     {StatusFinalizing},
	StatusFinalizing: {StatusCompleted, StatusActive},
	StatusCompleted:  {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DisciplineConfig is one enabled discipline's setup. Trap and skeet are
// configured in rounds, 5-stand in targets, sporting clays in targets spread
// over stations.
type DisciplineConfig struct {
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	Rounds       int                      `json:"rounds,omitempty"`
	Targets      int                      `json:"targets,omitempty"`
	Stations     int                      `json:"stations,omitempty"`
}

// Tournament is the configuration snapshot the engine reads.
type Tournament struct {
	ID          sharedtypes.TournamentID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	Disciplines []DisciplineConfig
	ShootOffs   ShootOffConfig
}

// Discipline returns the config for a discipline, or false when it is not
// enabled for this tournament.
func (t Tournament) Discipline(id sharedtypes.DisciplineID) (DisciplineConfig, bool) {
	for _, d := range t.Disciplines {
		if d.DisciplineID == id {
			return d, true
		}
	}
	return DisciplineConfig{}, false
}

// Validate checks the date range and discipline configs. Shoot-off config
// validity is checked separately so reporting keeps working when it is
// broken.
func (t Tournament) Validate() error {
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date %s precedes start date %s",
			t.EndDate.Format("2006-01-02"), t.StartDate.Format("2006-01-02"))
	}
	for _, d := range t.Disciplines {
		switch d.DisciplineID {
		case sharedtypes.DisciplineTrap, sharedtypes.DisciplineSkeet:
			if d.Rounds <= 0 {
				return fmt.Errorf("discipline %s requires a positive round count", d.DisciplineID)
			}
		case sharedtypes.DisciplineFiveStand:
			if d.Targets <= 0 {
				return fmt.Errorf("discipline %s requires a positive target count", d.DisciplineID)
			}
		case sharedtypes.DisciplineSportingClays:
			if d.Targets <= 0 || d.Stations <= 0 {
				return fmt.Errorf("discipline %s requires positive targets and stations", d.DisciplineID)
			}
		default:
			return fmt.Errorf("unknown discipline %s", d.DisciplineID)
		}
	}
	return nil
}
