package athletemigrations

import (
	"context"

	"github.com/uptrace/bun"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*athletedb.Athlete)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewCreateIndex().
			Model((*athletedb.Athlete)(nil)).
			Index("idx_athletes_team_id").
			Column("team_id").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*athletedb.Athlete)(nil)).IfExists().Exec(ctx)
		return err
	})
}
