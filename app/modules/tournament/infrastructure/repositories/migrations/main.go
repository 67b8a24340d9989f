package tournamentmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the tournament module's migration set.
var Migrations = migrate.NewMigrations()
