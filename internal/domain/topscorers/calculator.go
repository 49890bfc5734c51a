package topscorers

import (
	"cmp"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrInvalidIncident = crerr.New("invalid incident")

// Compute builds the scorer table from match incidents.
//
// When finished is non-nil only incidents of those match ids count. Own goals
// credit nobody. Incidents that cannot be attributed are returned as
// diagnostics and do not stop the aggregation.
func Compute(incidents []Incident, finished map[int64]struct{}) ([]Scorer, []error) {
	var diagnostics []error
	byPlayer := make(map[string]*Scorer)
	order := make([]string, 0)

	for i, inc := range incidents {
		if finished != nil {
			if _, ok := finished[inc.MatchID]; !ok {
				continue
			}
		}

		switch inc.Kind {
		case KindGoal, KindPenaltyGoal, KindAssist:
		case KindOwnGoal, KindYellowCard, KindRedCard, KindSubstitution:
			continue
		default:
			diagnostics = append(diagnostics, crerr.Wrapf(ErrInvalidIncident, "incident %d of match %d: unknown kind %q", i, inc.MatchID, inc.Kind))
			continue
		}

		playerID := strings.TrimSpace(inc.PlayerID)
		if playerID == "" {
			diagnostics = append(diagnostics, crerr.Wrapf(ErrInvalidIncident, "incident %d of match %d: %s without player", i, inc.MatchID, inc.Kind))
			continue
		}

		row, ok := byPlayer[playerID]
		if !ok {
			row = &Scorer{PlayerID: playerID}
			byPlayer[playerID] = row
			order = append(order, playerID)
		}
		if row.TeamID == "" {
			row.TeamID = inc.TeamID
		}

		switch inc.Kind {
		case KindGoal:
			row.Goals++
		case KindPenaltyGoal:
			row.Goals++
			row.PenaltyGoals++
		case KindAssist:
			row.Assists++
		}
	}

	out := make([]Scorer, 0, len(order))
	for _, id := range order {
		out = append(out, *byPlayer[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := compare(out[i], out[j]); c != 0 {
			return c < 0
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	for i := range out {
		if i > 0 && compare(out[i-1], out[i]) == 0 {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}

	return out, diagnostics
}

// compare returns a negative value when a ranks above b.
func compare(a, b Scorer) int {
	if c := cmp.Compare(b.Goals, a.Goals); c != 0 {
		return c
	}
	if c := cmp.Compare(a.PenaltyGoals, b.PenaltyGoals); c != 0 {
		return c
	}
	return cmp.Compare(b.Assists, a.Assists)
}
