package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// GenerateAthlete builds a plausible active varsity athlete with a random
// name and ID.
func GenerateAthlete() athletedomain.Athlete {
	firstYear := false
	return athletedomain.Athlete{
		ID:                   sharedtypes.NewAthleteID(),
		Name:                 gofakeit.Name(),
		Grade:                athletedomain.GradeSenior,
		FirstYearCompetition: &firstYear,
		IsActive:             true,
	}
}

// GenerateTournament builds an upcoming two-day tournament with a trap
// discipline of the given rounds.
func GenerateTournament(rounds int) tournamentdomain.Tournament {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	return tournamentdomain.Tournament{
		ID:        sharedtypes.NewTournamentID(),
		Name:      gofakeit.City() + " Open",
		StartDate: start,
		EndDate:   start.Add(24 * time.Hour),
		Status:    tournamentdomain.StatusUpcoming,
		Disciplines: []tournamentdomain.DisciplineConfig{
			{DisciplineID: sharedtypes.DisciplineTrap, Rounds: rounds},
		},
	}
}

// GenerateShoot builds a trap shoot with one station score per round, each
// out of 25.
func GenerateShoot(athleteID sharedtypes.AthleteID, tournamentID sharedtypes.TournamentID, rounds int) shootdomain.Shoot {
	scores := make([]shootdomain.StationScore, rounds)
	for i := range scores {
		scores[i] = shootdomain.StationScore{
			Station:  i + 1,
			Hits:     gofakeit.Number(15, 25),
			Possible: 25,
		}
	}
	return shootdomain.Shoot{
		ID:           sharedtypes.NewShootID(),
		AthleteID:    athleteID,
		TournamentID: tournamentID,
		DisciplineID: sharedtypes.DisciplineTrap,
		Date:         time.Now().UTC().Truncate(24 * time.Hour),
		Scores:       scores,
	}
}
