package shootoffdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
)

// ShootOff is the persisted aggregate: one row per shoot-off, participants
// and rounds as JSONB. The whole aggregate is read and written together
// under a row lock, so round mutations stay atomic.
type ShootOff struct {
	bun.BaseModel `bun:"table:shoot_offs,alias:so"`

	ID              uuid.UUID                    `bun:"id,pk,type:uuid"`
	TournamentID    uuid.UUID                    `bun:"tournament_id,notnull,type:uuid"`
	DisciplineID    *string                      `bun:"discipline_id,nullzero"`
	Position        int                          `bun:"position,notnull"`
	Format          string                       `bun:"format,notnull"`
	TargetsPerRound int                          `bun:"targets_per_round,notnull"`
	Status          string                       `bun:"status,notnull"`
	Participants    []shootoffdomain.Participant `bun:"participants,type:jsonb"`
	Rounds          []shootoffdomain.Round       `bun:"rounds,type:jsonb"`
	WinnerID        *uuid.UUID                   `bun:"winner_id,type:uuid,nullzero"`
	CreatedAt       time.Time                    `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time                    `bun:"updated_at,notnull,default:current_timestamp"`
}
