// Package leaderboardevents defines the leaderboard module's event topics and
// payloads.
package leaderboardevents

import (
	"time"

	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

const (
	StandingsRebuildRequestedV1 = "leaderboard.standings.rebuild.requested.v1"
	StandingsRebuiltV1          = "leaderboard.standings.rebuilt.v1"
	StandingsRebuildFailedV1    = "leaderboard.standings.rebuild.failed.v1"

	TieDetectRequestedV1 = "leaderboard.ties.detect.requested.v1"
	TiesDetectedV1       = "leaderboard.ties.detected.v1"
	TieDetectFailedV1    = "leaderboard.ties.detect.failed.v1"

	ExportRequestedV1 = "leaderboard.export.requested.v1"
	ExportedV1        = "leaderboard.exported.v1"
	ExportFailedV1    = "leaderboard.export.failed.v1"
)

// StandingsRebuildRequestedPayloadV1 asks for a standings rebuild.
type StandingsRebuildRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}

// StandingsRebuiltPayloadV1 carries the refreshed standings.
type StandingsRebuiltPayloadV1 struct {
	TournamentID sharedtypes.TournamentID     `json:"tournament_id"`
	Standings    []leaderboarddomain.Standing `json:"standings"`
	GeneratedAt  time.Time                    `json:"generated_at"`
}

// StandingsRebuildFailedPayloadV1 reports why standings could not be rebuilt.
type StandingsRebuildFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Reason       string                   `json:"reason"`
}

// TieDetectRequestedPayloadV1 asks for a tie detection pass.
type TieDetectRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}

// TiesDetectedPayloadV1 carries the proposed shoot-offs. An empty candidate
// list is a normal outcome.
type TiesDetectedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID         `json:"tournament_id"`
	Candidates   []leaderboarddomain.TieCandidate `json:"candidates"`
}

// TieDetectFailedPayloadV1 reports why tie detection could not run.
type TieDetectFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Reason       string                   `json:"reason"`
}

// ExportRequestedPayloadV1 asks for an XLSX export of the standings.
type ExportRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}

// ExportedPayloadV1 carries the rendered workbook.
type ExportedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Workbook     []byte                   `json:"workbook"`
}

// ExportFailedPayloadV1 reports why the export was rejected.
type ExportFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Reason       string                   `json:"reason"`
}
