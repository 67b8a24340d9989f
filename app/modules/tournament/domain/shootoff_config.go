package tournamentdomain

import "fmt"

// Trigger names a leaderboard position (or position range) whose ties
// require a shoot-off.
type Trigger string

const (
	TriggerFirst  Trigger = "1st"
	TriggerSecond Trigger = "2nd"
	TriggerThird  Trigger = "3rd"
	TriggerTop5   Trigger = "top5"
	TriggerTop10  Trigger = "top10"
)

// Format is the shoot-off elimination format.
type Format string

const (
	// FormatSuddenDeath eliminates the lowest scorers each round until one
	// shooter remains.
	FormatSuddenDeath Format = "sudden_death"
)

// TriggerCoversRank reports whether a trigger fires for a tie whose band
// starts at the given 1-based rank.
func TriggerCoversRank(t Trigger, rank int) bool {
	switch t {
	case TriggerFirst:
		return rank == 1
	case TriggerSecond:
		return rank == 2
	case TriggerThird:
		return rank == 3
	case TriggerTop5:
		return rank <= 5
	case TriggerTop10:
		return rank <= 10
	default:
		return false
	}
}

// ShootOffConfig is a tournament's shoot-off setup.
type ShootOffConfig struct {
	Enabled         bool      `json:"enabled"`
	Triggers        []Trigger `json:"triggers,omitempty"`
	Format          Format    `json:"format,omitempty"`
	TargetsPerRound int       `json:"targets_per_round,omitempty"`
	RequiresPerfect bool      `json:"requires_perfect,omitempty"`
}

// Validate checks the config when shoot-offs are enabled. A broken config is
// fatal to shoot-off creation only; statistics ignore it entirely.
func (c ShootOffConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Format != FormatSuddenDeath {
		return fmt.Errorf("unsupported shoot-off format %q", c.Format)
	}
	if c.TargetsPerRound <= 0 {
		return fmt.Errorf("shoot-off targets per round must be positive, got %d", c.TargetsPerRound)
	}
	if len(c.Triggers) == 0 {
		return fmt.Errorf("shoot-offs enabled but no trigger positions configured")
	}
	for _, t := range c.Triggers {
		switch t {
		case TriggerFirst, TriggerSecond, TriggerThird, TriggerTop5, TriggerTop10:
		default:
			return fmt.Errorf("unknown shoot-off trigger %q", t)
		}
	}
	return nil
}
