package tournamentdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
)

// Tournament is the persisted tournament configuration row. Discipline and
// shoot-off configs are JSONB documents.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`

	ID          uuid.UUID                           `bun:"id,pk,type:uuid"`
	Name        string                              `bun:"name,notnull"`
	StartDate   time.Time                           `bun:"start_date,notnull"`
	EndDate     time.Time                           `bun:"end_date,notnull"`
	Status      string                              `bun:"status,notnull,default:'upcoming'"`
	Disciplines []tournamentdomain.DisciplineConfig `bun:"disciplines,type:jsonb"`
	ShootOffs   tournamentdomain.ShootOffConfig     `bun:"shoot_offs,type:jsonb"`
	CreatedAt   time.Time                           `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time                           `bun:"updated_at,notnull,default:current_timestamp"`
}
