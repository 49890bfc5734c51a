package schedule

import (
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
)

var (
	ErrInvalidRoster = crerr.New("invalid roster")
	ErrInvalidConfig = crerr.New("invalid schedule config")
)

const (
	DefaultSpacingDays           = 7
	DefaultSecondLegOffsetMonths = 3
	DefaultKickoffTime           = "15:00"
)

// Entrant is a roster slot: the team id and the venue it hosts matches at.
type Entrant struct {
	TeamID string
	Venue  string
}

// Config controls date assignment. StartDate anchors round 1, which is
// played SpacingDays after it.
type Config struct {
	StartDate             time.Time
	SpacingDays           int
	SecondLegOffsetMonths int
	KickoffTime           string
}

func DefaultConfig(start time.Time) Config {
	return Config{
		StartDate:             start,
		SpacingDays:           DefaultSpacingDays,
		SecondLegOffsetMonths: DefaultSecondLegOffsetMonths,
		KickoffTime:           DefaultKickoffTime,
	}
}

func (c Config) Validate() error {
	if c.StartDate.IsZero() {
		return crerr.Wrap(ErrInvalidConfig, "start date is required")
	}
	if c.SpacingDays < 1 {
		return crerr.Wrapf(ErrInvalidConfig, "spacing days must be >= 1, got %d", c.SpacingDays)
	}
	if c.SecondLegOffsetMonths < 0 {
		return crerr.Wrapf(ErrInvalidConfig, "second leg offset months must be >= 0, got %d", c.SecondLegOffsetMonths)
	}
	if _, err := time.Parse(fixture.TimeLayout, c.KickoffTime); err != nil {
		return crerr.Wrapf(ErrInvalidConfig, "kickoff time %q is not HH:MM", c.KickoffTime)
	}

	return nil
}

// ValidateRoster checks the circle method preconditions: an even count of
// at least two distinct, non-empty team ids.
func ValidateRoster(entrants []Entrant) error {
	n := len(entrants)
	if n < 2 {
		return crerr.Wrapf(ErrInvalidRoster, "need at least 2 teams, got %d", n)
	}
	if n%2 != 0 {
		return crerr.Wrapf(ErrInvalidRoster, "team count must be even, got %d", n)
	}

	seen := make(map[string]struct{}, n)
	for i, e := range entrants {
		if e.TeamID == "" {
			return crerr.Wrapf(ErrInvalidRoster, "empty team id at position %d", i)
		}
		if _, dup := seen[e.TeamID]; dup {
			return crerr.Wrapf(ErrInvalidRoster, "duplicate team id %q", e.TeamID)
		}
		seen[e.TeamID] = struct{}{}
	}

	return nil
}

// GenerateSingleRoundRobin returns the first leg: N-1 rounds in which every
// pair meets once. Match ids start at 1.
func GenerateSingleRoundRobin(entrants []Entrant, cfg Config) ([]fixture.Match, error) {
	if err := ValidateRoster(entrants); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return firstLeg(entrants, cfg), nil
}

// GenerateDoubleRoundRobin returns both legs. The second leg mirrors the
// first in emission order with home and away swapped.
func GenerateDoubleRoundRobin(entrants []Entrant, cfg Config) ([]fixture.Match, error) {
	if err := ValidateRoster(entrants); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	venues := make(map[string]string, len(entrants))
	for _, e := range entrants {
		venues[e.TeamID] = e.Venue
	}

	first := firstLeg(entrants, cfg)
	rounds := len(entrants) - 1

	out := make([]fixture.Match, 0, 2*len(first))
	out = append(out, first...)
	nextID := int64(len(first)) + 1
	for _, m := range first {
		out = append(out, fixture.Match{
			ID:         nextID,
			HomeTeamID: m.AwayTeamID,
			AwayTeamID: m.HomeTeamID,
			Date:       AddMonths(m.Date, cfg.SecondLegOffsetMonths),
			Time:       m.Time,
			Round:      m.Round + rounds,
			Venue:      venues[m.AwayTeamID],
			Status:     fixture.StatusScheduled,
		})
		nextID++
	}

	return out, nil
}

func firstLeg(entrants []Entrant, cfg Config) []fixture.Match {
	n := len(entrants)
	circle := make([]Entrant, n)
	copy(circle, entrants)

	start := civilDate(cfg.StartDate)
	out := make([]fixture.Match, 0, n*(n-1)/2)
	var id int64 = 1
	for round := 1; round < n; round++ {
		date := start.AddDate(0, 0, round*cfg.SpacingDays)
		for i := 0; i < n/2; i++ {
			home := circle[i]
			away := circle[n-1-i]
			out = append(out, fixture.Match{
				ID:         id,
				HomeTeamID: home.TeamID,
				AwayTeamID: away.TeamID,
				Date:       date,
				Time:       cfg.KickoffTime,
				Round:      round,
				Venue:      home.Venue,
				Status:     fixture.StatusScheduled,
			})
			id++
		}

		// index 0 stays fixed; the last slot moves to index 1
		last := circle[n-1]
		copy(circle[2:], circle[1:n-1])
		circle[1] = last
	}

	return out
}

// AddMonths shifts t by n calendar months, clamping the day to the last day
// of the target month instead of overflowing into the next one.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	targetMonth := int(m) - 1 + n
	ty := y + targetMonth/12
	tm := targetMonth % 12
	if tm < 0 {
		tm += 12
		ty--
	}
	month := time.Month(tm + 1)

	if last := daysIn(ty, month); d > last {
		d = last
	}

	hh, mm, ss := t.Clock()
	return time.Date(ty, month, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
