package leaderboarddomain

import (
	"fmt"
	"sort"

	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// TieCandidate proposes one shoot-off: a rank, the athletes tied there, and
// the score they share. Detection only proposes; creating the shoot-off is an
// operator action.
type TieCandidate struct {
	Position    int                     `json:"position"`
	AthleteIDs  []sharedtypes.AthleteID `json:"athlete_ids"`
	TiedScore   int                     `json:"tied_score"`
	Description string                  `json:"description"`
}

// ExistingShootOff is the slice of shoot-off state tie detection needs to
// suppress duplicates.
type ExistingShootOff struct {
	Position     int
	Participants []sharedtypes.AthleteID
	Cancelled    bool
}

// DetectTies finds score bands whose starting rank matches a configured
// trigger. A band already covered by a live shoot-off at the same rank is
// suppressed, so repeated detection passes never propose duplicates. Pure and
// idempotent.
func DetectTies(standings []Standing, cfg tournamentdomain.ShootOffConfig, existing []ExistingShootOff) []TieCandidate {
	if !cfg.Enabled || len(cfg.Triggers) == 0 {
		return nil
	}

	var candidates []TieCandidate
	for _, band := range Bands(standings) {
		if len(band.Standings) < 2 {
			continue
		}
		if !triggered(cfg.Triggers, band.StartRank) {
			continue
		}

		ids := make([]sharedtypes.AthleteID, 0, len(band.Standings))
		for _, s := range band.Standings {
			ids = append(ids, s.AthleteID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

		if covered(existing, band.StartRank, ids) {
			continue
		}

		candidates = append(candidates, TieCandidate{
			Position:   band.StartRank,
			AthleteIDs: ids,
			TiedScore:  band.TotalTargets,
			Description: fmt.Sprintf("%d athletes tied for %s at %d targets",
				len(ids), ordinal(band.StartRank), band.TotalTargets),
		})
	}
	return candidates
}

func triggered(triggers []tournamentdomain.Trigger, rank int) bool {
	for _, t := range triggers {
		if tournamentdomain.TriggerCoversRank(t, rank) {
			return true
		}
	}
	return false
}

// covered reports whether a non-cancelled shoot-off at the same rank already
// includes every tied athlete.
func covered(existing []ExistingShootOff, rank int, tied []sharedtypes.AthleteID) bool {
	for _, so := range existing {
		if so.Cancelled || so.Position != rank {
			continue
		}
		participants := make(map[sharedtypes.AthleteID]struct{}, len(so.Participants))
		for _, id := range so.Participants {
			participants[id] = struct{}{}
		}
		all := true
		for _, id := range tied {
			if _, ok := participants[id]; !ok {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
