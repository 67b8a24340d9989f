package athletedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// AthleteDBImpl is the bun-backed Repository implementation.
type AthleteDBImpl struct {
	DB *bun.DB
}

func (db *AthleteDBImpl) GetByID(ctx context.Context, id sharedtypes.AthleteID) (*athletedomain.Athlete, error) {
	var row Athlete
	err := db.DB.NewSelect().
		Model(&row).
		Where("id = ?", uuid.UUID(id)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to fetch athlete %s: %w", id, err)
	}
	a := toDomain(row)
	return &a, nil
}

func (db *AthleteDBImpl) GetByIDs(ctx context.Context, ids []sharedtypes.AthleteID) ([]athletedomain.Athlete, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = uuid.UUID(id)
	}

	var rows []Athlete
	err := db.DB.NewSelect().
		Model(&rows).
		Where("id IN (?)", bun.In(raw)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch athletes: %w", err)
	}

	out := make([]athletedomain.Athlete, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

func (db *AthleteDBImpl) ListActive(ctx context.Context) ([]athletedomain.Athlete, error) {
	var rows []Athlete
	err := db.DB.NewSelect().
		Model(&rows).
		Where("is_active = TRUE").
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active athletes: %w", err)
	}

	out := make([]athletedomain.Athlete, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

func (db *AthleteDBImpl) Upsert(ctx context.Context, athlete *athletedomain.Athlete) error {
	row := fromDomain(*athlete)
	row.UpdatedAt = time.Now().UTC()

	_, err := db.DB.NewInsert().
		Model(&row).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("team_id = EXCLUDED.team_id").
		Set("grade = EXCLUDED.grade").
		Set("first_year_competition = EXCLUDED.first_year_competition").
		Set("division_override = EXCLUDED.division_override").
		Set("is_active = EXCLUDED.is_active").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert athlete %s: %w", athlete.ID, err)
	}
	return nil
}

func toDomain(row Athlete) athletedomain.Athlete {
	a := athletedomain.Athlete{
		ID:                   sharedtypes.AthleteID(row.ID),
		Name:                 row.Name,
		TeamID:               row.TeamID,
		Grade:                athletedomain.Grade(row.Grade),
		FirstYearCompetition: row.FirstYearCompetition,
		IsActive:             row.IsActive,
	}
	if row.DivisionOverride != nil {
		d := athletedomain.Division(*row.DivisionOverride)
		a.DivisionOverride = &d
	}
	return a
}

func fromDomain(a athletedomain.Athlete) Athlete {
	row := Athlete{
		ID:                   uuid.UUID(a.ID),
		Name:                 a.Name,
		TeamID:               a.TeamID,
		Grade:                string(a.Grade),
		FirstYearCompetition: a.FirstYearCompetition,
		IsActive:             a.IsActive,
	}
	if a.DivisionOverride != nil {
		s := string(*a.DivisionOverride)
		row.DivisionOverride = &s
	}
	return row
}

var _ Repository = (*AthleteDBImpl)(nil)
