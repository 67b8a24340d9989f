// Package shootoffdb persists shoot-off aggregates.
package shootoffdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// ErrShootOffNotFound indicates the requested shoot-off does not exist.
var ErrShootOffNotFound = errors.New("shoot-off not found")

// Repository is the shoot-off persistence boundary. Methods take a bun.IDB so
// callers can run them inside a transaction; GetForUpdate locks the row for
// the duration of that transaction.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, shootOff *shootoffdomain.ShootOff) error
	Get(ctx context.Context, db bun.IDB, id sharedtypes.ShootOffID) (*shootoffdomain.ShootOff, error)
	GetForUpdate(ctx context.Context, db bun.IDB, id sharedtypes.ShootOffID) (*shootoffdomain.ShootOff, error)
	Save(ctx context.Context, db bun.IDB, shootOff *shootoffdomain.ShootOff) error
	ListForTournament(ctx context.Context, db bun.IDB, tournamentID sharedtypes.TournamentID) ([]shootoffdomain.ShootOff, error)
}

// ShootOffDBImpl is the bun-backed Repository implementation.
type ShootOffDBImpl struct{}

func (ShootOffDBImpl) Create(ctx context.Context, db bun.IDB, shootOff *shootoffdomain.ShootOff) error {
	row := fromDomain(shootOff)
	if _, err := db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create shoot-off %s: %w", shootOff.ID, err)
	}
	return nil
}

func (ShootOffDBImpl) Get(ctx context.Context, db bun.IDB, id sharedtypes.ShootOffID) (*shootoffdomain.ShootOff, error) {
	return get(ctx, db, id, false)
}

func (ShootOffDBImpl) GetForUpdate(ctx context.Context, db bun.IDB, id sharedtypes.ShootOffID) (*shootoffdomain.ShootOff, error) {
	return get(ctx, db, id, true)
}

func get(ctx context.Context, db bun.IDB, id sharedtypes.ShootOffID, forUpdate bool) (*shootoffdomain.ShootOff, error) {
	var row ShootOff
	q := db.NewSelect().Model(&row).Where("id = ?", uuid.UUID(id))
	if forUpdate {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShootOffNotFound
		}
		return nil, fmt.Errorf("failed to fetch shoot-off %s: %w", id, err)
	}
	return toDomain(&row), nil
}

func (ShootOffDBImpl) Save(ctx context.Context, db bun.IDB, shootOff *shootoffdomain.ShootOff) error {
	row := fromDomain(shootOff)
	res, err := db.NewUpdate().
		Model(&row).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save shoot-off %s: %w", shootOff.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrShootOffNotFound
	}
	return nil
}

func (ShootOffDBImpl) ListForTournament(ctx context.Context, db bun.IDB, tournamentID sharedtypes.TournamentID) ([]shootoffdomain.ShootOff, error) {
	var rows []ShootOff
	err := db.NewSelect().
		Model(&rows).
		Where("tournament_id = ?", uuid.UUID(tournamentID)).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoot-offs for tournament %s: %w", tournamentID, err)
	}

	out := make([]shootoffdomain.ShootOff, 0, len(rows))
	for i := range rows {
		out = append(out, *toDomain(&rows[i]))
	}
	return out, nil
}

func fromDomain(s *shootoffdomain.ShootOff) ShootOff {
	row := ShootOff{
		ID:              uuid.UUID(s.ID),
		TournamentID:    uuid.UUID(s.TournamentID),
		Position:        s.Position,
		Format:          string(s.Format),
		TargetsPerRound: s.TargetsPerRound,
		Status:          string(s.Status),
		Participants:    s.Participants,
		Rounds:          s.Rounds,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.DisciplineID != nil {
		discipline := string(*s.DisciplineID)
		row.DisciplineID = &discipline
	}
	if s.WinnerID != nil {
		winner := uuid.UUID(*s.WinnerID)
		row.WinnerID = &winner
	}
	return row
}

func toDomain(row *ShootOff) *shootoffdomain.ShootOff {
	s := &shootoffdomain.ShootOff{
		ID:              sharedtypes.ShootOffID(row.ID),
		TournamentID:    sharedtypes.TournamentID(row.TournamentID),
		Position:        row.Position,
		Format:          tournamentdomain.Format(row.Format),
		TargetsPerRound: row.TargetsPerRound,
		Status:          shootoffdomain.Status(row.Status),
		Participants:    row.Participants,
		Rounds:          row.Rounds,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.DisciplineID != nil {
		discipline := sharedtypes.DisciplineID(*row.DisciplineID)
		s.DisciplineID = &discipline
	}
	if row.WinnerID != nil {
		winner := sharedtypes.AthleteID(*row.WinnerID)
		s.WinnerID = &winner
	}
	return s
}
