// Package leaderboardadapters bridges the leaderboard module to its
// neighbors without importing their services.
package leaderboardadapters

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// ShootOffLookup answers tie suppression queries from the shoot-off store.
type ShootOffLookup struct {
	db   bun.IDB
	repo shootoffdb.Repository
}

// NewShootOffLookup creates a new ShootOffLookup.
func NewShootOffLookup(db bun.IDB, repo shootoffdb.Repository) *ShootOffLookup {
	return &ShootOffLookup{db: db, repo: repo}
}

// ActiveForTournament returns every shoot-off in the tournament in the shape
// tie detection needs. Cancelled ones are included and flagged; a cancelled
// shoot-off never suppresses a tie.
func (l *ShootOffLookup) ActiveForTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]leaderboarddomain.ExistingShootOff, error) {
	shootOffs, err := l.repo.ListForTournament(ctx, l.db, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("listing shoot-offs: %w", err)
	}

	out := make([]leaderboarddomain.ExistingShootOff, 0, len(shootOffs))
	for _, so := range shootOffs {
		participants := make([]sharedtypes.AthleteID, 0, len(so.Participants))
		for _, p := range so.Participants {
			participants = append(participants, p.AthleteID)
		}
		out = append(out, leaderboarddomain.ExistingShootOff{
			Position:     so.Position,
			Participants: participants,
			Cancelled:    so.Status == shootoffdomain.StatusCancelled,
		})
	}
	return out, nil
}
