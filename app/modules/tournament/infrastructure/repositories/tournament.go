package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// ErrTournamentNotFound indicates the requested tournament does not exist.
var ErrTournamentNotFound = errors.New("tournament not found")

// Repository is the tournament persistence boundary.
type Repository interface {
	Get(ctx context.Context, id sharedtypes.TournamentID) (*tournamentdomain.Tournament, error)
	Upsert(ctx context.Context, t *tournamentdomain.Tournament) error
	UpdateStatus(ctx context.Context, id sharedtypes.TournamentID, from, to tournamentdomain.Status) error
}

// TournamentDBImpl is the bun-backed Repository implementation.
type TournamentDBImpl struct {
	DB *bun.DB
}

func (db *TournamentDBImpl) Get(ctx context.Context, id sharedtypes.TournamentID) (*tournamentdomain.Tournament, error) {
	var row Tournament
	err := db.DB.NewSelect().
		Model(&row).
		Where("id = ?", uuid.UUID(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to fetch tournament %s: %w", id, err)
	}

	t := tournamentdomain.Tournament{
		ID:          sharedtypes.TournamentID(row.ID),
		Name:        row.Name,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Status:      tournamentdomain.Status(row.Status),
		Disciplines: row.Disciplines,
		ShootOffs:   row.ShootOffs,
	}
	return &t, nil
}

func (db *TournamentDBImpl) Upsert(ctx context.Context, t *tournamentdomain.Tournament) error {
	row := Tournament{
		ID:          uuid.UUID(t.ID),
		Name:        t.Name,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Status:      string(t.Status),
		Disciplines: t.Disciplines,
		ShootOffs:   t.ShootOffs,
		UpdatedAt:   time.Now().UTC(),
	}

	_, err := db.DB.NewInsert().
		Model(&row).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("start_date = EXCLUDED.start_date").
		Set("end_date = EXCLUDED.end_date").
		Set("status = EXCLUDED.status").
		Set("disciplines = EXCLUDED.disciplines").
		Set("shoot_offs = EXCLUDED.shoot_offs").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert tournament %s: %w", t.ID, err)
	}
	return nil
}

// UpdateStatus applies a guarded status transition. The WHERE clause on the
// current status makes concurrent transitions race-safe: the losing writer
// matches zero rows.
func (db *TournamentDBImpl) UpdateStatus(ctx context.Context, id sharedtypes.TournamentID, from, to tournamentdomain.Status) error {
	if !tournamentdomain.CanTransition(from, to) {
		return fmt.Errorf("illegal tournament status transition %s -> %s", from, to)
	}

	res, err := db.DB.NewUpdate().
		Model((*Tournament)(nil)).
		Set("status = ?", string(to)).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", uuid.UUID(id)).
		Where("status = ?", string(from)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tournament %s status: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("tournament %s is no longer in status %s", id, from)
	}
	return nil
}

var _ Repository = (*TournamentDBImpl)(nil)
