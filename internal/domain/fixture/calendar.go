package fixture

import (
	"sort"
	"time"
)

// Round is one matchday of the calendar.
type Round struct {
	Number    int
	Date      time.Time
	Matches   []Match
	Completed bool
}

// GroupByRound buckets matches by round number in ascending order.
// A round's date is the earliest match date inside it.
func GroupByRound(matches []Match) []Round {
	index := make(map[int]int)
	rounds := make([]Round, 0)
	for _, m := range matches {
		pos, ok := index[m.Round]
		if !ok {
			pos = len(rounds)
			index[m.Round] = pos
			rounds = append(rounds, Round{Number: m.Round, Date: m.Date, Completed: true})
		}
		r := &rounds[pos]
		r.Matches = append(r.Matches, m)
		if m.Date.Before(r.Date) {
			r.Date = m.Date
		}
		if !m.Status.IsFinished() {
			r.Completed = false
		}
	}

	sort.SliceStable(rounds, func(i, j int) bool { return rounds[i].Number < rounds[j].Number })
	for i := range rounds {
		SortChronologically(rounds[i].Matches)
	}

	return rounds
}

// SortChronologically orders matches by date, kickoff time, round and id in place.
func SortChronologically(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return chronologicalLess(matches[i], matches[j])
	})
}

func chronologicalLess(a, b Match) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	if a.Round != b.Round {
		return a.Round < b.Round
	}
	return a.ID < b.ID
}

// ByTeam returns the matches teamID plays, oldest first.
func ByTeam(matches []Match, teamID string) []Match {
	out := make([]Match, 0)
	for _, m := range matches {
		if m.Involves(teamID) {
			out = append(out, m)
		}
	}
	SortChronologically(out)
	return out
}

// ByRound returns the matches of one round, oldest first.
func ByRound(matches []Match, round int) []Match {
	out := make([]Match, 0)
	for _, m := range matches {
		if m.Round == round {
			out = append(out, m)
		}
	}
	SortChronologically(out)
	return out
}

// Upcoming returns up to limit not-yet-finished matches dated on or after from.
// A limit <= 0 means no limit.
func Upcoming(matches []Match, from time.Time, limit int) []Match {
	day := truncateToDate(from)
	out := make([]Match, 0)
	for _, m := range matches {
		if m.Status.IsFinished() || m.Status == StatusSuspended {
			continue
		}
		if m.Date.Before(day) {
			continue
		}
		out = append(out, m)
	}
	SortChronologically(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Recent returns up to limit finished matches, newest first.
// A limit <= 0 means no limit.
func Recent(matches []Match, limit int) []Match {
	out := make([]Match, 0)
	for _, m := range matches {
		if m.Status.IsFinished() {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return chronologicalLess(out[j], out[i])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
