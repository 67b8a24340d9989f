// Package leaderboarddb persists leaderboard snapshots.
package leaderboarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// ErrSnapshotNotFound indicates no standings have been built yet.
var ErrSnapshotNotFound = errors.New("leaderboard snapshot not found")

// Repository is the leaderboard snapshot persistence boundary.
type Repository interface {
	GetCurrent(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]leaderboarddomain.Standing, time.Time, error)
	Save(ctx context.Context, tournamentID sharedtypes.TournamentID, standings []leaderboarddomain.Standing, generatedAt time.Time) error
}

// LeaderboardDBImpl is the bun-backed Repository implementation.
type LeaderboardDBImpl struct {
	DB *bun.DB
}

func (db *LeaderboardDBImpl) GetCurrent(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]leaderboarddomain.Standing, time.Time, error) {
	var row Snapshot
	err := db.DB.NewSelect().
		Model(&row).
		Where("tournament_id = ?", uuid.UUID(tournamentID)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, ErrSnapshotNotFound
		}
		return nil, time.Time{}, fmt.Errorf("failed to fetch leaderboard snapshot for %s: %w", tournamentID, err)
	}
	return row.Standings, row.GeneratedAt, nil
}

func (db *LeaderboardDBImpl) Save(ctx context.Context, tournamentID sharedtypes.TournamentID, standings []leaderboarddomain.Standing, generatedAt time.Time) error {
	row := Snapshot{
		TournamentID: uuid.UUID(tournamentID),
		Standings:    standings,
		GeneratedAt:  generatedAt,
	}
	_, err := db.DB.NewInsert().
		Model(&row).
		On("CONFLICT (tournament_id) DO UPDATE").
		Set("standings = EXCLUDED.standings").
		Set("generated_at = EXCLUDED.generated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save leaderboard snapshot for %s: %w", tournamentID, err)
	}
	return nil
}
