// Package athleteevents defines the athlete module's event topics and
// payloads.
package athleteevents

import (
	"github.com/google/uuid"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

const (
	UpsertRequestedV1 = "athlete.upsert.requested.v1"
	UpsertedV1        = "athlete.upserted.v1"
	UpsertFailedV1    = "athlete.upsert.failed.v1"

	GetRequestedV1 = "athlete.get.requested.v1"
	RetrievedV1    = "athlete.retrieved.v1"
	GetFailedV1    = "athlete.get.failed.v1"
)

// UpsertRequestedPayloadV1 creates or updates an athlete record. A zero ID
// creates a new athlete.
type UpsertRequestedPayloadV1 struct {
	AthleteID            sharedtypes.AthleteID   `json:"athlete_id,omitempty"`
	Name                 string                  `json:"name"`
	TeamID               *uuid.UUID              `json:"team_id,omitempty"`
	Grade                athletedomain.Grade     `json:"grade"`
	FirstYearCompetition *bool                   `json:"first_year_competition,omitempty"`
	DivisionOverride     *athletedomain.Division `json:"division_override,omitempty"`
	IsActive             bool                    `json:"is_active"`
}

// UpsertedPayloadV1 reports the stored athlete with both division values, so
// operators can see what an override is masking.
type UpsertedPayloadV1 struct {
	AthleteID          sharedtypes.AthleteID  `json:"athlete_id"`
	Name               string                 `json:"name"`
	CalculatedDivision athletedomain.Division `json:"calculated_division"`
	EffectiveDivision  athletedomain.Division `json:"effective_division"`
}

// UpsertFailedPayloadV1 reports why the record was rejected.
type UpsertFailedPayloadV1 struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// GetRequestedPayloadV1 asks for one athlete.
type GetRequestedPayloadV1 struct {
	AthleteID sharedtypes.AthleteID `json:"athlete_id"`
}

// RetrievedPayloadV1 carries one athlete with division classification.
type RetrievedPayloadV1 struct {
	AthleteID            sharedtypes.AthleteID   `json:"athlete_id"`
	Name                 string                  `json:"name"`
	Grade                athletedomain.Grade     `json:"grade"`
	FirstYearCompetition *bool                   `json:"first_year_competition,omitempty"`
	DivisionOverride     *athletedomain.Division `json:"division_override,omitempty"`
	CalculatedDivision   athletedomain.Division  `json:"calculated_division"`
	EffectiveDivision    athletedomain.Division  `json:"effective_division"`
	IsActive             bool                    `json:"is_active"`
}

// GetFailedPayloadV1 reports a failed lookup.
type GetFailedPayloadV1 struct {
	AthleteID sharedtypes.AthleteID `json:"athlete_id"`
	Reason    string                `json:"reason"`
}
