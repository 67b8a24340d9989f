package leaderboarddomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

func standingsFromTotals(totals ...int) ([]Standing, []sharedtypes.AthleteID) {
	ids := make([]sharedtypes.AthleteID, len(totals))
	standings := make([]Standing, len(totals))
	for i, total := range totals {
		ids[i] = sharedtypes.AthleteID(uuid.New())
		standings[i] = Standing{AthleteID: ids[i], TotalTargets: total, TotalPossible: 200}
	}
	// Assign competition ranks the way BuildStandings does. Inputs must be
	// descending.
	for i := range standings {
		if i > 0 && standings[i].TotalTargets == standings[i-1].TotalTargets {
			standings[i].Rank = standings[i-1].Rank
			continue
		}
		standings[i].Rank = i + 1
	}
	return standings, ids
}

func shootOffConfig(triggers ...tournamentdomain.Trigger) tournamentdomain.ShootOffConfig {
	return tournamentdomain.ShootOffConfig{
		Enabled:         true,
		Triggers:        triggers,
		Format:          tournamentdomain.FormatSuddenDeath,
		TargetsPerRound: 2,
	}
}

func TestDetectTiesFirstPlace(t *testing.T) {
	standings, ids := standingsFromTotals(190, 190, 180)

	candidates := DetectTies(standings, shootOffConfig(tournamentdomain.TriggerFirst), nil)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	c := candidates[0]
	if c.Position != 1 || c.TiedScore != 190 {
		t.Errorf("candidate = %+v", c)
	}
	want := map[sharedtypes.AthleteID]bool{ids[0]: true, ids[1]: true}
	for _, id := range c.AthleteIDs {
		if !want[id] {
			t.Errorf("unexpected athlete %s in candidate", id)
		}
	}
}

func TestDetectTiesIgnoresUntriggeredRank(t *testing.T) {
	// Tie at rank 2 with only a 1st-place trigger configured.
	standings, _ := standingsFromTotals(195, 190, 190)

	candidates := DetectTies(standings, shootOffConfig(tournamentdomain.TriggerFirst), nil)
	if len(candidates) != 0 {
		t.Fatalf("got %d candidates, want 0", len(candidates))
	}
}

func TestDetectTiesTopFiveCoversInnerRanks(t *testing.T) {
	// Ties at ranks 2 and 6; top5 covers only the first.
	standings, _ := standingsFromTotals(200, 195, 195, 190, 185, 180, 180)

	candidates := DetectTies(standings, shootOffConfig(tournamentdomain.TriggerTop5), nil)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Position != 2 {
		t.Errorf("position = %d, want 2", candidates[0].Position)
	}
}

func TestDetectTiesSuppressedByLiveShootOff(t *testing.T) {
	standings, ids := standingsFromTotals(190, 190, 180)

	existing := []ExistingShootOff{{
		Position:     1,
		Participants: []sharedtypes.AthleteID{ids[0], ids[1]},
	}}

	candidates := DetectTies(standings, shootOffConfig(tournamentdomain.TriggerFirst), existing)
	if len(candidates) != 0 {
		t.Fatalf("got %d candidates, want 0 after suppression", len(candidates))
	}
}

func TestDetectTiesCancelledShootOffDoesNotSuppress(t *testing.T) {
	standings, ids := standingsFromTotals(190, 190, 180)

	existing := []ExistingShootOff{{
		Position:     1,
		Participants: []sharedtypes.AthleteID{ids[0], ids[1]},
		Cancelled:    true,
	}}

	candidates := DetectTies(standings, shootOffConfig(tournamentdomain.TriggerFirst), existing)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1 when prior shoot-off was cancelled", len(candidates))
	}
}

func TestDetectTiesPartialCoverageDoesNotSuppress(t *testing.T) {
	standings, ids := standingsFromTotals(190, 190, 190)

	// Prior shoot-off covers only two of the three tied athletes.
	existing := []ExistingShootOff{{
		Position:     1,
		Participants: []sharedtypes.AthleteID{ids[0], ids[1]},
	}}

	candidates := DetectTies(standings, shootOffConfig(tournamentdomain.TriggerFirst), existing)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1 with partial coverage", len(candidates))
	}
	if len(candidates[0].AthleteIDs) != 3 {
		t.Errorf("candidate covers %d athletes, want 3", len(candidates[0].AthleteIDs))
	}
}

func TestDetectTiesIdempotent(t *testing.T) {
	standings, _ := standingsFromTotals(190, 190, 180, 180, 170)
	cfg := shootOffConfig(tournamentdomain.TriggerFirst, tournamentdomain.TriggerThird)

	first := DetectTies(standings, cfg, nil)
	second := DetectTies(standings, cfg, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("detection not idempotent (-first +second):\n%s", diff)
	}
	if len(first) != 2 {
		t.Errorf("got %d candidates, want ties at 1st and 3rd", len(first))
	}
}

func TestDetectTiesDisabled(t *testing.T) {
	standings, _ := standingsFromTotals(190, 190)
	cfg := shootOffConfig(tournamentdomain.TriggerFirst)
	cfg.Enabled = false

	if got := DetectTies(standings, cfg, nil); len(got) != 0 {
		t.Fatalf("got %d candidates with shoot-offs disabled, want 0", len(got))
	}
}
