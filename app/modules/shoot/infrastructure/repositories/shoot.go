package shootdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// ShootDBImpl is the bun-backed Repository implementation.
type ShootDBImpl struct {
	DB *bun.DB
}

func (db *ShootDBImpl) LogShoot(ctx context.Context, shoot *shootdomain.Shoot, source string) error {
	row := Shoot{
		ID:           uuid.UUID(shoot.ID),
		AthleteID:    uuid.UUID(shoot.AthleteID),
		TournamentID: uuid.UUID(shoot.TournamentID),
		DisciplineID: string(shoot.DisciplineID),
		Date:         shoot.Date,
		Scores:       shoot.Scores,
		Source:       source,
		UpdatedAt:    time.Now().UTC(),
	}

	_, err := db.DB.NewInsert().
		Model(&row).
		On("CONFLICT (athlete_id, tournament_id, discipline_id, date) DO UPDATE").
		Set("scores = EXCLUDED.scores").
		Set("source = EXCLUDED.source").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to log shoot for athlete %s: %w", shoot.AthleteID, err)
	}
	return nil
}

func (db *ShootDBImpl) GetForAthleteDiscipline(ctx context.Context, athleteID sharedtypes.AthleteID, disciplineID sharedtypes.DisciplineID, window *Window) ([]shootdomain.Shoot, error) {
	q := db.DB.NewSelect().
		Model((*Shoot)(nil)).
		Where("athlete_id = ?", uuid.UUID(athleteID)).
		Where("discipline_id = ?", string(disciplineID))
	return db.scanShoots(ctx, applyWindow(q, window))
}

func (db *ShootDBImpl) GetForAthlete(ctx context.Context, athleteID sharedtypes.AthleteID, window *Window) ([]shootdomain.Shoot, error) {
	q := db.DB.NewSelect().
		Model((*Shoot)(nil)).
		Where("athlete_id = ?", uuid.UUID(athleteID))
	return db.scanShoots(ctx, applyWindow(q, window))
}

func (db *ShootDBImpl) GetForTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]shootdomain.Shoot, error) {
	q := db.DB.NewSelect().
		Model((*Shoot)(nil)).
		Where("tournament_id = ?", uuid.UUID(tournamentID))
	return db.scanShoots(ctx, q)
}

func applyWindow(q *bun.SelectQuery, window *Window) *bun.SelectQuery {
	if window == nil {
		return q
	}
	if !window.From.IsZero() {
		q = q.Where("date >= ?", window.From)
	}
	if !window.To.IsZero() {
		q = q.Where("date <= ?", window.To)
	}
	return q
}

func (db *ShootDBImpl) scanShoots(ctx context.Context, q *bun.SelectQuery) ([]shootdomain.Shoot, error) {
	var rows []Shoot
	if err := q.Order("date ASC").Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch shoots: %w", err)
	}

	out := make([]shootdomain.Shoot, len(rows))
	for i, row := range rows {
		out[i] = shootdomain.Shoot{
			ID:           sharedtypes.ShootID(row.ID),
			AthleteID:    sharedtypes.AthleteID(row.AthleteID),
			TournamentID: sharedtypes.TournamentID(row.TournamentID),
			DisciplineID: sharedtypes.DisciplineID(row.DisciplineID),
			Date:         row.Date,
			Scores:       row.Scores,
		}
	}
	return out, nil
}

var _ Repository = (*ShootDBImpl)(nil)
