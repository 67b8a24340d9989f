package tournamentmigrations

import (
	"context"

	"github.com/uptrace/bun"

	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().Model((*tournamentdb.Tournament)(nil)).IfNotExists().Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*tournamentdb.Tournament)(nil)).IfExists().Exec(ctx)
		return err
	})
}
