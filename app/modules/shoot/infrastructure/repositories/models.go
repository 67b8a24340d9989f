package shootdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
)

// Shoot is one persisted shoot. Station scores live in a JSONB column;
// totals are never stored (normalizer invariant).
type Shoot struct {
	bun.BaseModel `bun:"table:shoots,alias:s"`

	ID           uuid.UUID                   `bun:"id,pk,type:uuid"`
	AthleteID    uuid.UUID                   `bun:"athlete_id,notnull,type:uuid"`
	TournamentID uuid.UUID                   `bun:"tournament_id,notnull,type:uuid"`
	DisciplineID string                      `bun:"discipline_id,notnull"`
	Date         time.Time                   `bun:"date,notnull"`
	Scores       []shootdomain.StationScore  `bun:"scores,type:jsonb"`
	Source       string                      `bun:"source,notnull,default:'manual'"`
	CreatedAt    time.Time                   `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time                   `bun:"updated_at,notnull,default:current_timestamp"`
}
