package leaguestanding

import (
	"cmp"
	"sort"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
)

// rank orders rows in place. Rows arrive in roster order and every sort is
// stable, so roster order is the last resort for every tie-break.
func rank(rows []Standing, played []fixture.Match, tieBreak TieBreak) {
	switch tieBreak {
	case TieBreakTeamID:
		sort.SliceStable(rows, func(i, j int) bool {
			if c := comparePrimary(rows[i], rows[j]); c != 0 {
				return c < 0
			}
			return rows[i].TeamID < rows[j].TeamID
		})
	case TieBreakHeadToHead:
		sortPrimary(rows)
		for start := 0; start < len(rows); {
			end := start + 1
			for end < len(rows) && comparePrimary(rows[start], rows[end]) == 0 {
				end++
			}
			if end-start > 1 {
				sortHeadToHead(rows[start:end], played)
			}
			start = end
		}
	default:
		sortPrimary(rows)
	}
}

func sortPrimary(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		return comparePrimary(rows[i], rows[j]) < 0
	})
}

// comparePrimary returns a negative value when a ranks above b.
func comparePrimary(a, b Standing) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalsFor, a.GoalsFor)
}

// sortHeadToHead reorders a group tied on the primary criteria by a
// mini-table built only from matches between members of the group.
func sortHeadToHead(group []Standing, played []fixture.Match) {
	members := make(map[string]int, len(group))
	for i, row := range group {
		members[row.TeamID] = i
	}

	mini := make([]Standing, len(group))
	for i, row := range group {
		mini[i].TeamID = row.TeamID
	}
	for _, m := range played {
		h, okHome := members[m.HomeTeamID]
		a, okAway := members[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		apply(&mini[h], &mini[a], *m.HomeGoals, *m.AwayGoals)
	}
	byTeam := make(map[string]Standing, len(mini))
	for _, row := range mini {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		byTeam[row.TeamID] = row
	}

	sort.SliceStable(group, func(i, j int) bool {
		return comparePrimary(byTeam[group[i].TeamID], byTeam[group[j].TeamID]) < 0
	})
}
