package leaguestanding

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidRoster         = crerr.New("invalid standings roster")
	ErrUnknownTeam           = crerr.New("unknown team")
	ErrInconsistentMatchData = crerr.New("inconsistent match data")
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// Standing represents a league table row for one team.
type Standing struct {
	TeamID         string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Table is a ranked standings projection plus the matches it had to skip.
type Table struct {
	Rows        []Standing
	Diagnostics []MatchDataError
}

// MatchDataError describes one match left out of aggregation.
type MatchDataError struct {
	MatchID int64
	Reason  string
}

func (e MatchDataError) Error() string {
	return fmt.Sprintf("%s: match %d: %s", ErrInconsistentMatchData, e.MatchID, e.Reason)
}

func (e MatchDataError) Is(target error) bool {
	return target == ErrInconsistentMatchData
}

// TieBreak selects the ordering applied after points, goal difference and goals for.
type TieBreak string

const (
	TieBreakRosterOrder TieBreak = "roster"
	TieBreakHeadToHead  TieBreak = "head_to_head"
	TieBreakTeamID      TieBreak = "team_id"
)

func ParseTieBreak(v string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "roster", "roster_order":
		return TieBreakRosterOrder, nil
	case "head_to_head", "h2h":
		return TieBreakHeadToHead, nil
	case "team_id", "alphabetical":
		return TieBreakTeamID, nil
	default:
		return "", fmt.Errorf("unknown tie-break %q: valid values are %s, %s, %s", v, TieBreakRosterOrder, TieBreakHeadToHead, TieBreakTeamID)
	}
}

// Options tunes ranking. The zero value ranks by roster order and omits form.
type Options struct {
	TieBreak   TieBreak
	FormLength int
}

const DefaultFormLength = 5

func DefaultOptions() Options {
	return Options{
		TieBreak:   TieBreakRosterOrder,
		FormLength: DefaultFormLength,
	}
}
