package eventbus

import "context"

// Stream names, one per module that publishes events. Subjects follow the
// "<module>.>" convention so every versioned topic lands in its module's
// stream.
const (
	AthleteStream     = "athlete"
	TournamentStream  = "tournament"
	ShootStream       = "shoot"
	StatsStream       = "stats"
	LeaderboardStream = "leaderboard"
	ShootOffStream    = "shootoff"
)

var streamSubjects = map[string][]string{
	AthleteStream:     {"athlete.>"},
	TournamentStream:  {"tournament.>"},
	ShootStream:       {"shoot.>"},
	StatsStream:       {"stats.>"},
	LeaderboardStream: {"leaderboard.>"},
	ShootOffStream:    {"shootoff.>"},
}

// CreateStreams bootstraps every module stream. Called once at startup before
// the routers begin consuming.
func CreateStreams(ctx context.Context, eb EventBus) error {
	for name, subjects := range streamSubjects {
		if err := eb.CreateStream(ctx, name, subjects...); err != nil {
			return err
		}
	}
	return nil
}
