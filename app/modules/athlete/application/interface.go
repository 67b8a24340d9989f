package athleteservice

import (
	"context"

	"github.com/google/uuid"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/results"
)

// Service defines the operations offered by the athlete module.
type Service interface {
	UpsertAthlete(ctx context.Context, req UpsertRequest) (results.OperationResult[*athletedomain.Athlete, *AthleteFailure], error)
	GetAthlete(ctx context.Context, id sharedtypes.AthleteID) (results.OperationResult[*athletedomain.Athlete, *AthleteFailure], error)
	ListActive(ctx context.Context) ([]athletedomain.Athlete, error)
}

// UpsertRequest creates or updates an athlete. A zero AthleteID creates a new
// record.
type UpsertRequest struct {
	AthleteID            sharedtypes.AthleteID
	Name                 string
	TeamID               *uuid.UUID
	Grade                athletedomain.Grade
	FirstYearCompetition *bool
	DivisionOverride     *athletedomain.Division
	IsActive             bool
}

// AthleteFailure is the business-failure payload for athlete operations.
type AthleteFailure struct {
	Reason string `json:"reason"`
}
