// Package shootoffevents defines the shoot-off module's event topics and
// payloads.
package shootoffevents

import (
	shootoffdomain "github.com/clay-target-club/claybot/app/modules/shootoff/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

const (
	CreateRequestedV1 = "shootoff.create.requested.v1"
	CreatedV1         = "shootoff.created.v1"
	CreateFailedV1    = "shootoff.create.failed.v1"

	StartRequestedV1 = "shootoff.start.requested.v1"
	StartedV1        = "shootoff.started.v1"
	StartFailedV1    = "shootoff.start.failed.v1"

	RoundCreateRequestedV1 = "shootoff.round.create.requested.v1"
	RoundCreatedV1         = "shootoff.round.created.v1"
	RoundCreateFailedV1    = "shootoff.round.create.failed.v1"

	RoundScoresSubmitRequestedV1 = "shootoff.round.scores.submit.requested.v1"
	RoundScoredV1                = "shootoff.round.scored.v1"
	RoundScoresSubmitFailedV1    = "shootoff.round.scores.submit.failed.v1"

	WinnerDeclareRequestedV1 = "shootoff.winner.declare.requested.v1"
	WinnerDeclaredV1         = "shootoff.winner.declared.v1"
	WinnerDeclareFailedV1    = "shootoff.winner.declare.failed.v1"

	CancelRequestedV1 = "shootoff.cancel.requested.v1"
	CancelledV1       = "shootoff.cancelled.v1"
	CancelFailedV1    = "shootoff.cancel.failed.v1"
)

// CreateRequestedPayloadV1 asks for a shoot-off to be created from a detected
// tie. Sent by an operator, never automatically by tie detection. DisciplineID
// is nil unless the tie is scoped to one discipline.
type CreateRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID  `json:"tournament_id"`
	DisciplineID *sharedtypes.DisciplineID `json:"discipline_id,omitempty"`
	Position     int                       `json:"position"`
	TiedScore    int                       `json:"tied_score"`
	AthleteIDs   []sharedtypes.AthleteID   `json:"athlete_ids"`
}

// CreatedPayloadV1 reports a created, still pending shoot-off.
type CreatedPayloadV1 struct {
	ShootOffID   sharedtypes.ShootOffID    `json:"shoot_off_id"`
	TournamentID sharedtypes.TournamentID  `json:"tournament_id"`
	DisciplineID *sharedtypes.DisciplineID `json:"discipline_id,omitempty"`
	Position     int                       `json:"position"`
	Participants int                       `json:"participants"`
}

// CreateFailedPayloadV1 reports why a shoot-off could not be created.
type CreateFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Position     int                      `json:"position"`
	Reason       string                   `json:"reason"`
}

// StartRequestedPayloadV1 asks for a pending shoot-off to begin.
type StartRequestedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
}

// StartedPayloadV1 reports a shoot-off moving to in progress.
type StartedPayloadV1 struct {
	ShootOffID   sharedtypes.ShootOffID   `json:"shoot_off_id"`
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}

// StartFailedPayloadV1 reports why a shoot-off could not start.
type StartFailedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
	Reason     string                 `json:"reason"`
}

// RoundCreateRequestedPayloadV1 asks for the next round to open.
type RoundCreateRequestedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
}

// RoundCreatedPayloadV1 reports a new round and its roster.
type RoundCreatedPayloadV1 struct {
	ShootOffID  sharedtypes.ShootOffID  `json:"shoot_off_id"`
	RoundNumber int                     `json:"round_number"`
	Roster      []sharedtypes.AthleteID `json:"roster"`
}

// RoundCreateFailedPayloadV1 reports why a round could not open.
type RoundCreateFailedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
	Reason     string                 `json:"reason"`
}

// RoundScoresSubmitRequestedPayloadV1 carries one round's scores. One entry
// per roster member.
type RoundScoresSubmitRequestedPayloadV1 struct {
	ShootOffID  sharedtypes.ShootOffID        `json:"shoot_off_id"`
	RoundNumber int                           `json:"round_number"`
	Scores      map[sharedtypes.AthleteID]int `json:"scores"`
}

// RoundScoredPayloadV1 reports a scored round and the resulting eliminations.
type RoundScoredPayloadV1 struct {
	ShootOffID       sharedtypes.ShootOffID  `json:"shoot_off_id"`
	RoundNumber      int                     `json:"round_number"`
	Eliminated       []sharedtypes.AthleteID `json:"eliminated"`
	ActiveRemaining  int                     `json:"active_remaining"`
	WinnerDeclarable bool                    `json:"winner_declarable"`
}

// RoundScoresSubmitFailedPayloadV1 reports why scores were rejected.
type RoundScoresSubmitFailedPayloadV1 struct {
	ShootOffID  sharedtypes.ShootOffID `json:"shoot_off_id"`
	RoundNumber int                    `json:"round_number"`
	Reason      string                 `json:"reason"`
}

// WinnerDeclareRequestedPayloadV1 asks for the winner to be declared.
type WinnerDeclareRequestedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
}

// WinnerDeclaredPayloadV1 reports the completed shoot-off and final places.
type WinnerDeclaredPayloadV1 struct {
	ShootOffID   sharedtypes.ShootOffID       `json:"shoot_off_id"`
	TournamentID sharedtypes.TournamentID     `json:"tournament_id"`
	WinnerID     sharedtypes.AthleteID        `json:"winner_id"`
	Participants []shootoffdomain.Participant `json:"participants"`
}

// WinnerDeclareFailedPayloadV1 reports why the winner could not be declared.
type WinnerDeclareFailedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
	Reason     string                 `json:"reason"`
}

// CancelRequestedPayloadV1 asks for a shoot-off to be cancelled.
type CancelRequestedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
}

// CancelledPayloadV1 reports a cancelled shoot-off.
type CancelledPayloadV1 struct {
	ShootOffID   sharedtypes.ShootOffID   `json:"shoot_off_id"`
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}

// CancelFailedPayloadV1 reports why cancellation was rejected.
type CancelFailedPayloadV1 struct {
	ShootOffID sharedtypes.ShootOffID `json:"shoot_off_id"`
	Reason     string                 `json:"reason"`
}
