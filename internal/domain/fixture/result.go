package fixture

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

// Result is the recorded outcome of a calendar match, keyed by match id.
type Result struct {
	MatchID   int64
	Status    Status
	HomeGoals *int
	AwayGoals *int
}

// ResultRepository exposes recorded results for a league season.
type ResultRepository interface {
	ListResultsByLeague(ctx context.Context, leagueID string) ([]Result, error)
}

// ApplyResults returns a copy of matches with results merged in by match id.
// Results that reference no match are reported and otherwise ignored; the
// later of two results for the same match wins.
func ApplyResults(matches []Match, results []Result) ([]Match, []error) {
	out := make([]Match, len(matches))
	copy(out, matches)

	index := make(map[int64]int, len(out))
	for i, m := range out {
		index[m.ID] = i
	}

	var unmatched []error
	for _, r := range results {
		i, ok := index[r.MatchID]
		if !ok {
			unmatched = append(unmatched, crerr.Wrapf(ErrUnknownMatch, "result references match %d", r.MatchID))
			continue
		}
		out[i].Status = r.Status
		out[i].HomeGoals = copyGoals(r.HomeGoals)
		out[i].AwayGoals = copyGoals(r.AwayGoals)
	}

	return out, unmatched
}

func copyGoals(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
