package shootoffmigrations

import (
	"context"

	"github.com/uptrace/bun"

	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*shootoffdb.ShootOff)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewCreateIndex().
			Model((*shootoffdb.ShootOff)(nil)).
			Index("idx_shoot_offs_tournament").
			Column("tournament_id").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*shootoffdb.ShootOff)(nil)).IfExists().Exec(ctx)
		return err
	})
}
