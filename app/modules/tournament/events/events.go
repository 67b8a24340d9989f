// Package tournamentevents defines the tournament module's event topics and
// payloads.
package tournamentevents

import (
	"time"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

const (
	UpsertRequestedV1 = "tournament.upsert.requested.v1"
	UpsertedV1        = "tournament.upserted.v1"
	UpsertFailedV1    = "tournament.upsert.failed.v1"

	StatusUpdateRequestedV1 = "tournament.status.update.requested.v1"
	StatusUpdatedV1         = "tournament.status.updated.v1"
	StatusUpdateFailedV1    = "tournament.status.update.failed.v1"

	GetRequestedV1 = "tournament.get.requested.v1"
	RetrievedV1    = "tournament.retrieved.v1"
	GetFailedV1    = "tournament.get.failed.v1"
)

// UpsertRequestedPayloadV1 creates or updates a tournament configuration. A
// zero ID creates a new tournament in the upcoming state.
type UpsertRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID            `json:"tournament_id,omitempty"`
	Name         string                              `json:"name"`
	StartDate    time.Time                           `json:"start_date"`
	EndDate      time.Time                           `json:"end_date"`
	Disciplines  []tournamentdomain.DisciplineConfig `json:"disciplines"`
	ShootOffs    tournamentdomain.ShootOffConfig     `json:"shoot_offs"`
}

// UpsertedPayloadV1 reports the stored tournament.
type UpsertedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Name         string                   `json:"name"`
	Status       tournamentdomain.Status  `json:"status"`
}

// UpsertFailedPayloadV1 reports why the configuration was rejected.
type UpsertFailedPayloadV1 struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// StatusUpdateRequestedPayloadV1 moves a tournament through its lifecycle.
type StatusUpdateRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Status       tournamentdomain.Status  `json:"status"`
}

// StatusUpdatedPayloadV1 reports the applied transition.
type StatusUpdatedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	From         tournamentdomain.Status  `json:"from"`
	To           tournamentdomain.Status  `json:"to"`
}

// StatusUpdateFailedPayloadV1 reports a rejected transition.
type StatusUpdateFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Status       tournamentdomain.Status  `json:"status"`
	Reason       string                   `json:"reason"`
}

// GetRequestedPayloadV1 asks for one tournament.
type GetRequestedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
}

// RetrievedPayloadV1 carries one tournament configuration.
type RetrievedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID            `json:"tournament_id"`
	Name         string                              `json:"name"`
	StartDate    time.Time                           `json:"start_date"`
	EndDate      time.Time                           `json:"end_date"`
	Status       tournamentdomain.Status             `json:"status"`
	Disciplines  []tournamentdomain.DisciplineConfig `json:"disciplines"`
	ShootOffs    tournamentdomain.ShootOffConfig     `json:"shoot_offs"`
}

// GetFailedPayloadV1 reports a failed lookup.
type GetFailedPayloadV1 struct {
	TournamentID sharedtypes.TournamentID `json:"tournament_id"`
	Reason       string                   `json:"reason"`
}
