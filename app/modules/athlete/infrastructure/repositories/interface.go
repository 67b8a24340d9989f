package athletedb

import (
	"context"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// Repository is the athlete persistence boundary consumed by the stats and
// leaderboard services.
type Repository interface {
	GetByID(ctx context.Context, id sharedtypes.AthleteID) (*athletedomain.Athlete, error)
	GetByIDs(ctx context.Context, ids []sharedtypes.AthleteID) ([]athletedomain.Athlete, error)
	ListActive(ctx context.Context) ([]athletedomain.Athlete, error)
	Upsert(ctx context.Context, athlete *athletedomain.Athlete) error
}
