package shootoffmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the shoot-off module's migration set.
var Migrations = migrate.NewMigrations()
