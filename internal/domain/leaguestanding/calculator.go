package leaguestanding

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
)

// Compute aggregates finished matches into a ranked table for roster.
//
// Roster and match-reference problems abort the call. Matches whose score
// disagrees with their status are skipped and reported in Table.Diagnostics.
func Compute(roster []string, matches []fixture.Match, opts Options) (Table, error) {
	index, err := indexRoster(roster)
	if err != nil {
		return Table{}, err
	}
	for _, m := range matches {
		if _, ok := index[m.HomeTeamID]; !ok {
			return Table{}, crerr.Wrapf(ErrUnknownTeam, "match %d home team %q", m.ID, m.HomeTeamID)
		}
		if _, ok := index[m.AwayTeamID]; !ok {
			return Table{}, crerr.Wrapf(ErrUnknownTeam, "match %d away team %q", m.ID, m.AwayTeamID)
		}
	}

	rows := make([]Standing, len(roster))
	for i, id := range roster {
		rows[i].TeamID = id
	}

	var diagnostics []MatchDataError
	played := make([]fixture.Match, 0, len(matches))
	for _, m := range matches {
		if reason := checkMatch(m); reason != "" {
			diagnostics = append(diagnostics, MatchDataError{MatchID: m.ID, Reason: reason})
			continue
		}
		if !m.Status.IsFinished() {
			continue
		}
		apply(&rows[index[m.HomeTeamID]], &rows[index[m.AwayTeamID]], *m.HomeGoals, *m.AwayGoals)
		played = append(played, m)
	}
	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	fixture.SortChronologically(played)
	if opts.FormLength > 0 {
		applyForm(rows, index, played, opts.FormLength)
	}

	rank(rows, played, opts.TieBreak)
	for i := range rows {
		rows[i].Position = i + 1
	}

	return Table{Rows: rows, Diagnostics: diagnostics}, nil
}

func indexRoster(roster []string) (map[string]int, error) {
	index := make(map[string]int, len(roster))
	for i, id := range roster {
		if strings.TrimSpace(id) == "" {
			return nil, crerr.Wrapf(ErrInvalidRoster, "empty team id at position %d", i)
		}
		if _, dup := index[id]; dup {
			return nil, crerr.Wrapf(ErrInvalidRoster, "duplicate team id %q", id)
		}
		index[id] = i
	}
	return index, nil
}

func checkMatch(m fixture.Match) string {
	if m.HomeTeamID == m.AwayTeamID {
		return "team " + m.HomeTeamID + " is listed as both home and away"
	}
	if err := m.CheckScore(); err != nil {
		return err.Error()
	}
	return ""
}

func apply(home, away *Standing, homeGoals, awayGoals int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeGoals
	home.GoalsAgainst += awayGoals
	away.GoalsFor += awayGoals
	away.GoalsAgainst += homeGoals

	switch {
	case homeGoals > awayGoals:
		home.Won++
		home.Points += PointsWin
		away.Lost++
		away.Points += PointsLoss
	case homeGoals < awayGoals:
		away.Won++
		away.Points += PointsWin
		home.Lost++
		home.Points += PointsLoss
	default:
		home.Drawn++
		away.Drawn++
		home.Points += PointsDraw
		away.Points += PointsDraw
	}
}

func applyForm(rows []Standing, index map[string]int, played []fixture.Match, length int) {
	results := make([][]byte, len(rows))
	for _, m := range played {
		h, a := index[m.HomeTeamID], index[m.AwayTeamID]
		switch {
		case *m.HomeGoals > *m.AwayGoals:
			results[h] = append(results[h], 'W')
			results[a] = append(results[a], 'L')
		case *m.HomeGoals < *m.AwayGoals:
			results[h] = append(results[h], 'L')
			results[a] = append(results[a], 'W')
		default:
			results[h] = append(results[h], 'D')
			results[a] = append(results[a], 'D')
		}
	}
	for i, r := range results {
		if len(r) > length {
			r = r[len(r)-length:]
		}
		rows[i].Form = string(r)
	}
}
