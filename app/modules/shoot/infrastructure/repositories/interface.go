package shootdb

import (
	"context"
	"time"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// Window is an optional time filter on shoot queries. Zero bounds are open.
type Window struct {
	From time.Time
	To   time.Time
}

// Repository is the shoot persistence boundary.
type Repository interface {
	// LogShoot inserts a shoot, or replaces its scores when a shoot for the
	// same athlete/tournament/discipline/date already exists.
	LogShoot(ctx context.Context, shoot *shootdomain.Shoot, source string) error

	// GetForAthleteDiscipline returns an athlete's shoots in one discipline,
	// chronologically ordered, optionally windowed.
	GetForAthleteDiscipline(ctx context.Context, athleteID sharedtypes.AthleteID, disciplineID sharedtypes.DisciplineID, window *Window) ([]shootdomain.Shoot, error)

	// GetForAthlete returns all of an athlete's shoots, chronologically
	// ordered, optionally windowed.
	GetForAthlete(ctx context.Context, athleteID sharedtypes.AthleteID, window *Window) ([]shootdomain.Shoot, error)

	// GetForTournament returns every shoot in a tournament.
	GetForTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]shootdomain.Shoot, error)
}
