package shootmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the shoot module's migration set.
var Migrations = migrate.NewMigrations()
