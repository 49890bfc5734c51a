package fixture

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrUnknownStatus     = crerr.New("unknown match status")
	ErrInconsistentScore = crerr.New("inconsistent match score")
	ErrUnknownMatch      = crerr.New("unknown match")
)

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusSuspended  Status = "SUSPENDED"
)

// DateLayout is the civil date format used for Match.Date on the wire.
const DateLayout = "2006-01-02"

// TimeLayout is the kickoff time format used for Match.Time.
const TimeLayout = "15:04"

// Match represents one scheduled or played encounter.
type Match struct {
	ID         int64
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
	Time       string
	Round      int
	Venue      string
	Status     Status
	HomeGoals  *int
	AwayGoals  *int
}

var statusAliases = map[string]Status{
	"SCHEDULED":   StatusScheduled,
	"NS":          StatusScheduled,
	"PROGRAMADO":  StatusScheduled,
	"POR JUGAR":   StatusScheduled,
	"IN_PROGRESS": StatusInProgress,
	"IN_PLAY":     StatusInProgress,
	"LIVE":        StatusInProgress,
	"EN CURSO":    StatusInProgress,
	"FINISHED":    StatusFinished,
	"FT":          StatusFinished,
	"FINALIZADO":  StatusFinished,
	"SUSPENDED":   StatusSuspended,
	"POSTPONED":   StatusSuspended,
	"SUSPENDIDO":  StatusSuspended,
}

// ParseStatus maps canonical names and known aliases to a Status.
func ParseStatus(value string) (Status, error) {
	key := strings.ToUpper(strings.TrimSpace(value))
	if key == "" {
		return StatusScheduled, nil
	}
	if status, ok := statusAliases[key]; ok {
		return status, nil
	}

	return "", crerr.Wrapf(ErrUnknownStatus, "%q", value)
}

// NormalizeStatus is ParseStatus without the error; unknown values fall back to scheduled.
func NormalizeStatus(value string) Status {
	status, err := ParseStatus(value)
	if err != nil {
		return StatusScheduled
	}
	return status
}

func (s Status) IsFinished() bool {
	return s == StatusFinished
}

func (m Match) HasScore() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

// CheckScore reports why the score fields disagree with the status, or nil.
func (m Match) CheckScore() error {
	switch {
	case m.HomeGoals == nil && m.AwayGoals == nil:
		if m.Status.IsFinished() {
			return crerr.Mark(crerr.New("finished match has no score"), ErrInconsistentScore)
		}
		return nil
	case m.HomeGoals == nil || m.AwayGoals == nil:
		return crerr.Mark(crerr.New("only one side of the score is set"), ErrInconsistentScore)
	case *m.HomeGoals < 0 || *m.AwayGoals < 0:
		return crerr.Mark(crerr.Newf("negative score %d-%d", *m.HomeGoals, *m.AwayGoals), ErrInconsistentScore)
	case !m.Status.IsFinished():
		return crerr.Mark(crerr.Newf("match with status %s carries a score", m.Status), ErrInconsistentScore)
	default:
		return nil
	}
}

// KickoffAt combines the civil date with the kickoff time in loc.
func (m Match) KickoffAt(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, mo, d := m.Date.Date()
	clock, err := time.Parse(TimeLayout, m.Time)
	if err != nil {
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	}

	return time.Date(y, mo, d, clock.Hour(), clock.Minute(), 0, 0, loc)
}

// Involves reports whether teamID plays in the match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}
