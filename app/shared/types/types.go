// Package sharedtypes holds the identifier and value types shared across
// modules. Keeping them in one place prevents import cycles between domain
// packages and keeps event payloads consistent.
package sharedtypes

import "github.com/google/uuid"

// AthleteID identifies an athlete.
type AthleteID uuid.UUID

func (id AthleteID) String() string                { return uuid.UUID(id).String() }
func (id AthleteID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *AthleteID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// TournamentID identifies a tournament.
type TournamentID uuid.UUID

func (id TournamentID) String() string                { return uuid.UUID(id).String() }
func (id TournamentID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *TournamentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ShootID identifies a single athlete's attempt at one discipline in one
// tournament on one date.
type ShootID uuid.UUID

func (id ShootID) String() string                { return uuid.UUID(id).String() }
func (id ShootID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *ShootID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ShootOffID identifies a shoot-off.
type ShootOffID uuid.UUID

func (id ShootOffID) String() string                { return uuid.UUID(id).String() }
func (id ShootOffID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *ShootOffID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParticipantID identifies a participant within a shoot-off.
type ParticipantID uuid.UUID

func (id ParticipantID) String() string                { return uuid.UUID(id).String() }
func (id ParticipantID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *ParticipantID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// DisciplineID is the slug for a clay-target discipline.
type DisciplineID string

const (
	DisciplineTrap          DisciplineID = "trap"
	DisciplineSkeet         DisciplineID = "skeet"
	DisciplineFiveStand     DisciplineID = "five_stand"
	DisciplineSportingClays DisciplineID = "sporting_clays"
)

// Score is a targets-hit count inside a shoot-off round.
type Score int

// NewAthleteID returns a fresh random AthleteID.
func NewAthleteID() AthleteID { return AthleteID(uuid.New()) }

// NewTournamentID returns a fresh random TournamentID.
func NewTournamentID() TournamentID { return TournamentID(uuid.New()) }

// NewShootID returns a fresh random ShootID.
func NewShootID() ShootID { return ShootID(uuid.New()) }

// NewShootOffID returns a fresh random ShootOffID.
func NewShootOffID() ShootOffID { return ShootOffID(uuid.New()) }

// NewParticipantID returns a fresh random ParticipantID.
func NewParticipantID() ParticipantID { return ParticipantID(uuid.New()) }
