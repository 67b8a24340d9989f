package leaderboarddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
)

// Snapshot is the latest persisted standings for one tournament. One row per
// tournament; rebuilds replace it. Standings are a presentation cache only
// and can always be regenerated from shoots.
type Snapshot struct {
	bun.BaseModel `bun:"table:leaderboard_snapshots,alias:ls"`

	TournamentID uuid.UUID                    `bun:"tournament_id,pk,type:uuid"`
	Standings    []leaderboarddomain.Standing `bun:"standings,type:jsonb"`
	GeneratedAt  time.Time                    `bun:"generated_at,notnull,default:current_timestamp"`
}
