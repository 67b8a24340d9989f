package athletedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Athlete is the persisted athlete row. The calculated division is never
// stored; it is derived from grade data on read.
type Athlete struct {
	bun.BaseModel `bun:"table:athletes,alias:a"`

	ID                   uuid.UUID  `bun:"id,pk,type:uuid"`
	Name                 string     `bun:"name,notnull"`
	TeamID               *uuid.UUID `bun:"team_id,type:uuid,nullzero"`
	Grade                string     `bun:"grade,notnull,default:''"`
	FirstYearCompetition *bool      `bun:"first_year_competition"`
	DivisionOverride     *string    `bun:"division_override,nullzero"`
	IsActive             bool       `bun:"is_active,notnull,default:true"`
	CreatedAt            time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt            time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
}
