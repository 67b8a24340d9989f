package shootservice

import (
	"context"
	"time"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// Service defines the operations offered by the shoot module.
type Service interface {
	LogShootScores(ctx context.Context, req LogScoresRequest) (results.OperationResult[*shootdomain.Shoot, *LogScoresFailure], error)
	ImportScoreSheet(ctx context.Context, req ImportSheetRequest) (results.OperationResult[*ImportSheetSuccess, *ImportSheetFailure], error)
}

// LogScoresRequest carries everything needed to record one athlete's shoot.
type LogScoresRequest struct {
	AthleteID    sharedtypes.AthleteID
	TournamentID sharedtypes.TournamentID
	DisciplineID sharedtypes.DisciplineID
	Date         time.Time
	Scores       []shootdomain.StationScore
	Source       string
	Overwrite    bool
}

// LogScoresFailure is the business-failure payload for LogShootScores.
type LogScoresFailure struct {
	Reason string `json:"reason"`
}

// ImportSheetRequest carries an XLSX score sheet to parse and record.
type ImportSheetRequest struct {
	TournamentID sharedtypes.TournamentID
	DisciplineID sharedtypes.DisciplineID
	Sheet        []byte
	SubmittedBy  string
	Overwrite    bool
}

// ImportRowError describes one sheet row that could not be recorded.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportSheetSuccess summarizes a completed sheet import.
type ImportSheetSuccess struct {
	Imported  int              `json:"imported"`
	Skipped   int              `json:"skipped"`
	RowErrors []ImportRowError `json:"row_errors,omitempty"`
}

// ImportSheetFailure is the business-failure payload for ImportScoreSheet.
type ImportSheetFailure struct {
	Reason string `json:"reason"`
}
