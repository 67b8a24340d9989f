package leaderboardmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the leaderboard module's migration set.
var Migrations = migrate.NewMigrations()
