package shootmigrations

import (
	"context"

	"github.com/uptrace/bun"

	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*shootdb.Shoot)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*shootdb.Shoot)(nil)).
			Index("idx_shoots_natural_key").
			Unique().
			Column("athlete_id", "tournament_id", "discipline_id", "date").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewCreateIndex().
			Model((*shootdb.Shoot)(nil)).
			Index("idx_shoots_tournament").
			Column("tournament_id").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*shootdb.Shoot)(nil)).IfExists().Exec(ctx)
		return err
	})
}
