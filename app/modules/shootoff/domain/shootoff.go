package shootoffdomain

import (
	"fmt"
	"sort"
	"time"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// Participant is one athlete in a shoot-off. EliminatedRound is zero while
// the participant is active. FinalPlace is assigned only at winner
// declaration.
type Participant struct {
	AthleteID       sharedtypes.AthleteID `json:"athlete_id"`
	Name            string                `json:"name"`
	TiedScore       int                   `json:"tied_score"`
	Eliminated      bool                  `json:"eliminated"`
	EliminatedRound int                   `json:"eliminated_round,omitempty"`
	FinalPlace      *int                  `json:"final_place,omitempty"`
}

// Round is one shoot-off round. Roster is the participant set frozen at
// creation; eliminations later in the same round never change it. Scores is
// filled on submission.
type Round struct {
	RoundNumber int                           `json:"round_number"`
	Roster      []sharedtypes.AthleteID       `json:"roster"`
	Scores      map[sharedtypes.AthleteID]int `json:"scores,omitempty"`
	CompletedAt *time.Time                    `json:"completed_at,omitempty"`
}

// ShootOff is the aggregate root. Position is the leaderboard rank being
// contested. DisciplineID is nil when the shoot-off covers the whole
// tournament rather than a single discipline.
type ShootOff struct {
	ID              sharedtypes.ShootOffID
	TournamentID    sharedtypes.TournamentID
	DisciplineID    *sharedtypes.DisciplineID
	Position        int
	Format          tournamentdomain.Format
	TargetsPerRound int
	Status          Status
	Participants    []Participant
	Rounds          []Round
	WinnerID        *sharedtypes.AthleteID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewShootOff creates a pending shoot-off for the given tied athletes.
func NewShootOff(
	id sharedtypes.ShootOffID,
	tournamentID sharedtypes.TournamentID,
	disciplineID *sharedtypes.DisciplineID,
	position int,
	cfg tournamentdomain.ShootOffConfig,
	tiedScore int,
	athletes []Participant,
) (*ShootOff, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return nil, fmt.Errorf("shoot-offs are disabled for this tournament")
	}
	if len(athletes) < 2 {
		return nil, fmt.Errorf("a shoot-off needs at least two participants, got %d", len(athletes))
	}
	if position < 1 {
		return nil, fmt.Errorf("position must be a positive rank, got %d", position)
	}

	seen := make(map[sharedtypes.AthleteID]struct{}, len(athletes))
	participants := make([]Participant, 0, len(athletes))
	for _, a := range athletes {
		if _, dup := seen[a.AthleteID]; dup {
			return nil, fmt.Errorf("athlete %s listed twice", a.AthleteID)
		}
		seen[a.AthleteID] = struct{}{}
		participants = append(participants, Participant{
			AthleteID: a.AthleteID,
			Name:      a.Name,
			TiedScore: tiedScore,
		})
	}

	now := time.Now().UTC()
	return &ShootOff{
		ID:              id,
		TournamentID:    tournamentID,
		DisciplineID:    disciplineID,
		Position:        position,
		Format:          cfg.Format,
		TargetsPerRound: cfg.TargetsPerRound,
		Status:          StatusPending,
		Participants:    participants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ActiveParticipants returns the participants not yet eliminated.
func (s *ShootOff) ActiveParticipants() []Participant {
	var active []Participant
	for _, p := range s.Participants {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

func (s *ShootOff) participant(id sharedtypes.AthleteID) *Participant {
	for i := range s.Participants {
		if s.Participants[i].AthleteID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// Start moves the shoot-off from pending to in progress. It does not create
// round one; that is a separate operation.
func (s *ShootOff) Start() error {
	if !CanTransition(s.Status, StatusInProgress) {
		return fmt.Errorf("cannot start a %s shoot-off", s.Status)
	}
	s.Status = StatusInProgress
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Cancel moves the shoot-off to cancelled from pending or in progress. Round
// data already captured is kept for audit but carries no official result.
func (s *ShootOff) Cancel() error {
	if !CanTransition(s.Status, StatusCancelled) {
		return fmt.Errorf("cannot cancel a %s shoot-off", s.Status)
	}
	s.Status = StatusCancelled
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// CreateRound opens the next round with the currently active participants as
// its roster.
func (s *ShootOff) CreateRound() (*Round, error) {
	if s.Status != StatusInProgress {
		return nil, fmt.Errorf("cannot create a round on a %s shoot-off", s.Status)
	}
	if s.WinnerID != nil {
		return nil, fmt.Errorf("winner already declared")
	}
	if len(s.Rounds) > 0 && s.Rounds[len(s.Rounds)-1].CompletedAt == nil {
		return nil, fmt.Errorf("round %d has not been scored yet", s.Rounds[len(s.Rounds)-1].RoundNumber)
	}
	active := s.ActiveParticipants()
	if len(active) < 2 {
		return nil, fmt.Errorf("need more than one active participant to shoot a round, have %d", len(active))
	}

	roster := make([]sharedtypes.AthleteID, 0, len(active))
	for _, p := range active {
		roster = append(roster, p.AthleteID)
	}

	round := Round{
		RoundNumber: len(s.Rounds) + 1,
		Roster:      roster,
	}
	s.Rounds = append(s.Rounds, round)
	s.UpdatedAt = time.Now().UTC()
	return &s.Rounds[len(s.Rounds)-1], nil
}

// SubmitRoundScores records one score per roster member and applies the
// elimination policy. Validation is complete before any mutation: a missing
// participant, an unknown athlete, or an out-of-range score rejects the whole
// submission and changes nothing.
func (s *ShootOff) SubmitRoundScores(roundNumber int, scores map[sharedtypes.AthleteID]int) error {
	if s.Status != StatusInProgress {
		return fmt.Errorf("cannot score a round on a %s shoot-off", s.Status)
	}

	var round *Round
	for i := range s.Rounds {
		if s.Rounds[i].RoundNumber == roundNumber {
			round = &s.Rounds[i]
			break
		}
	}
	if round == nil {
		return fmt.Errorf("round %d does not exist", roundNumber)
	}
	if round.CompletedAt != nil {
		return fmt.Errorf("round %d is already scored", roundNumber)
	}

	roster := make(map[sharedtypes.AthleteID]struct{}, len(round.Roster))
	for _, id := range round.Roster {
		roster[id] = struct{}{}
		score, ok := scores[id]
		if !ok {
			return fmt.Errorf("missing score for athlete %s", id)
		}
		if score < 0 || score > s.TargetsPerRound {
			return fmt.Errorf("score %d for athlete %s outside [0, %d]", score, id, s.TargetsPerRound)
		}
	}
	for id := range scores {
		if _, ok := roster[id]; !ok {
			return fmt.Errorf("athlete %s is not in round %d", id, roundNumber)
		}
	}

	now := time.Now().UTC()
	round.Scores = make(map[sharedtypes.AthleteID]int, len(scores))
	for id, score := range scores {
		round.Scores[id] = score
	}
	round.CompletedAt = &now

	s.applyElimination(round)
	s.UpdatedAt = now
	return nil
}

// applyElimination marks every roster member at the round's minimum score as
// eliminated, unless that would eliminate everyone: a full tie at the minimum
// eliminates no one and play continues.
func (s *ShootOff) applyElimination(round *Round) {
	lowest := s.TargetsPerRound + 1
	for _, id := range round.Roster {
		if score := round.Scores[id]; score < lowest {
			lowest = score
		}
	}

	atMinimum := 0
	for _, id := range round.Roster {
		if round.Scores[id] == lowest {
			atMinimum++
		}
	}
	if atMinimum == len(round.Roster) {
		return
	}

	for _, id := range round.Roster {
		if round.Scores[id] != lowest {
			continue
		}
		p := s.participant(id)
		p.Eliminated = true
		p.EliminatedRound = round.RoundNumber
	}
}

// DeclareWinner completes the shoot-off once exactly one active participant
// remains. The winner takes place 1; eliminated participants take descending
// places by elimination round, most recent first. Participants eliminated in
// the same round share a place, and the place after a shared band skips past
// it.
func (s *ShootOff) DeclareWinner() (sharedtypes.AthleteID, error) {
	if s.Status != StatusInProgress {
		return sharedtypes.AthleteID{}, fmt.Errorf("cannot declare a winner on a %s shoot-off", s.Status)
	}
	if s.WinnerID != nil {
		return sharedtypes.AthleteID{}, fmt.Errorf("winner already declared")
	}
	active := s.ActiveParticipants()
	if len(active) != 1 {
		return sharedtypes.AthleteID{}, fmt.Errorf("exactly one active participant required, have %d", len(active))
	}

	winnerID := active[0].AthleteID
	winner := s.participant(winnerID)
	place := 1
	winner.FinalPlace = &place

	// Group eliminated participants by round, latest round first, names
	// breaking order inside a band. A band shares one place value;
	// the next band resumes after the full band size.
	eliminated := make([]*Participant, 0, len(s.Participants)-1)
	for i := range s.Participants {
		if s.Participants[i].Eliminated {
			eliminated = append(eliminated, &s.Participants[i])
		}
	}
	sort.SliceStable(eliminated, func(i, j int) bool {
		if eliminated[i].EliminatedRound != eliminated[j].EliminatedRound {
			return eliminated[i].EliminatedRound > eliminated[j].EliminatedRound
		}
		return eliminated[i].Name < eliminated[j].Name
	})

	nextPlace := 2
	for i := 0; i < len(eliminated); {
		j := i
		for j < len(eliminated) && eliminated[j].EliminatedRound == eliminated[i].EliminatedRound {
			j++
		}
		bandPlace := nextPlace
		for k := i; k < j; k++ {
			p := bandPlace
			eliminated[k].FinalPlace = &p
		}
		nextPlace += j - i
		i = j
	}

	s.WinnerID = &winnerID
	s.Status = StatusCompleted
	s.UpdatedAt = time.Now().UTC()
	return winnerID, nil
}
