package athletemigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the athlete module's migration set.
var Migrations = migrate.NewMigrations()
