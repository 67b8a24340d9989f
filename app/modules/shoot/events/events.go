// Package shootevents defines the shoot module's event topics and payloads.
package shootevents

import (
	"time"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

const (
	LogScoresRequestedV1 = "shoot.scores.log.requested.v1"
	ScoresLoggedV1       = "shoot.scores.logged.v1"
	LogScoresFailedV1    = "shoot.scores.log.failed.v1"

	SheetImportRequestedV1 = "shoot.sheet.import.requested.v1"
	SheetImportedV1        = "shoot.sheet.imported.v1"
	SheetImportFailedV1    = "shoot.sheet.import.failed.v1"
)

// LogScoresRequestedPayloadV1 asks the shoot module to record one shoot.
type LogScoresRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID   `json:"tournament_id"`
	AthleteID    sharedtypes.AthleteID      `json:"athlete_id"`
	DisciplineID sharedtypes.DisciplineID   `json:"discipline_id"`
	Date         time.Time                  `json:"date"`
	Scores       []shootdomain.StationScore `json:"scores"`
	Overwrite    bool                       `json:"overwrite"`
}

// ScoresLoggedPayloadV1 reports a recorded shoot with its normalized totals.
type ScoresLoggedPayloadV1 struct {
	ShootID       sharedtypes.ShootID      `json:"shoot_id"`
	TournamentID  sharedtypes.TournamentID `json:"tournament_id"`
	AthleteID     sharedtypes.AthleteID    `json:"athlete_id"`
	DisciplineID  sharedtypes.DisciplineID `json:"discipline_id"`
	TotalTargets  int                      `json:"total_targets"`
	TotalPossible int                      `json:"total_possible"`
	Percentage    float64                  `json:"percentage"`
}

// LogScoresFailedPayloadV1 reports why a shoot could not be recorded.
type LogScoresFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	AthleteID    sharedtypes.AthleteID    `json:"athlete_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	Reason       string                   `json:"reason"`
}

// SheetImportRequestedPayloadV1 asks for a score-sheet workbook import.
type SheetImportRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	Date         time.Time                `json:"date"`
	SubmittedBy  string                   `json:"submitted_by"`
	Sheet        []byte                   `json:"sheet"`
}

// SheetImportedPayloadV1 reports a completed workbook import.
type SheetImportedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	ShootsLogged int                      `json:"shoots_logged"`
}

// SheetImportFailedPayloadV1 reports why a workbook import was rejected.
type SheetImportFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	DisciplineID sharedtypes.DisciplineID `json:"discipline_id"`
	Reason       string                   `json:"reason"`
}
