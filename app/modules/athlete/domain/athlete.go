// Package athletedomain holds athlete records and the grade-to-division
// classification. Roster management itself lives outside this service;
// athletes arrive here as input data for statistics and tie resolution.
package athletedomain

import (
	"github.com/google/uuid"

	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// Athlete is one registered shooter.
type Athlete struct {
	ID                   sharedtypes.AthleteID
	Name                 string
	TeamID               *uuid.UUID
	Grade                Grade
	FirstYearCompetition *bool
	DivisionOverride     *Division
	IsActive             bool
}

// CalculatedDivision returns the division derived from grade information.
// It is recomputed on every call and retained for operator visibility even
// when an override is set.
func (a Athlete) CalculatedDivision() Division {
	return ClassifyDivision(a.Grade, a.FirstYearCompetition)
}

// EffectiveDivision returns the division used by every downstream
// computation: the override when set, otherwise the calculated division.
func (a Athlete) EffectiveDivision() Division {
	if a.DivisionOverride != nil && *a.DivisionOverride != DivisionNone {
		return *a.DivisionOverride
	}
	return a.CalculatedDivision()
}
