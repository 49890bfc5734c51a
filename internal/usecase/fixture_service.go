package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/schedule"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	"github.com/riskibarqy/tornea-league/internal/platform/cache"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// ScheduleDefaults fills the schedule settings a caller leaves out.
type ScheduleDefaults struct {
	SpacingDays           int
	SecondLegOffsetMonths int
	KickoffTime           string
}

func DefaultScheduleDefaults() ScheduleDefaults {
	return ScheduleDefaults{
		SpacingDays:           schedule.DefaultSpacingDays,
		SecondLegOffsetMonths: schedule.DefaultSecondLegOffsetMonths,
		KickoffTime:           schedule.DefaultKickoffTime,
	}
}

func (d ScheduleDefaults) config(start time.Time) schedule.Config {
	return schedule.Config{
		StartDate:             start,
		SpacingDays:           d.SpacingDays,
		SecondLegOffsetMonths: d.SecondLegOffsetMonths,
		KickoffTime:           d.KickoffTime,
	}
}

// SeasonCalendar is the generated calendar of a seeded league with its
// recorded results merged in.
type SeasonCalendar struct {
	League  league.League
	Teams   []team.Team
	Matches []fixture.Match
}

func (c SeasonCalendar) Roster() []string {
	out := make([]string, 0, len(c.Teams))
	for _, t := range c.Teams {
		out = append(out, t.ID)
	}
	return out
}

type FixtureFilter struct {
	TeamID string
	Round  int
}

type GenerateScheduleInput struct {
	Teams                 []schedule.Entrant
	StartDate             time.Time
	SpacingDays           *int
	SecondLegOffsetMonths *int
	KickoffTime           string
	SingleLeg             bool
}

type FixtureService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	resultRepo fixture.ResultRepository
	calendars  *cache.Store
	defaults   ScheduleDefaults
	logger     *logging.Logger
	now        func() time.Time
}

func NewFixtureService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	resultRepo fixture.ResultRepository,
	calendars *cache.Store,
	defaults ScheduleDefaults,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		resultRepo: resultRepo,
		calendars:  calendars,
		defaults:   defaults,
		logger:     logger,
		now:        time.Now,
	}
}

// Season returns the double round-robin of a seeded league. Generated
// calendars are cached per roster and schedule settings; results are merged
// on every call.
func (s *FixtureService) Season(ctx context.Context, leagueID string) (SeasonCalendar, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Season", attribute.String("league_id", leagueID))
	defer span.End()

	l, err := getLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return SeasonCalendar{}, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return SeasonCalendar{}, fmt.Errorf("list teams by league: %w", err)
	}

	entrants := make([]schedule.Entrant, 0, len(teams))
	for _, t := range teams {
		entrants = append(entrants, schedule.Entrant{TeamID: t.ID, Venue: t.Venue})
	}
	cfg := s.defaults.config(l.SeasonStart)

	generated, err := cache.Load(ctx, s.calendars, calendarKey(l.ID, cfg, entrants), func(context.Context) ([]fixture.Match, error) {
		return schedule.GenerateDoubleRoundRobin(entrants, cfg)
	})
	if err != nil {
		// A seeded roster that cannot be scheduled is our data problem, not the caller's.
		return SeasonCalendar{}, fmt.Errorf("generate calendar for league %s: %v", l.ID, err)
	}

	matches := generated
	if s.resultRepo != nil {
		results, err := s.resultRepo.ListResultsByLeague(ctx, l.ID)
		if err != nil {
			return SeasonCalendar{}, fmt.Errorf("%w: list results: %v", ErrDependencyUnavailable, err)
		}
		var unmatched []error
		matches, unmatched = fixture.ApplyResults(generated, results)
		for _, e := range unmatched {
			s.logger.WarnContext(ctx, "recorded result ignored", "league_id", l.ID, "error", e)
		}
	} else {
		matches = append([]fixture.Match(nil), generated...)
	}

	return SeasonCalendar{League: l, Teams: teams, Matches: matches}, nil
}

func (s *FixtureService) ListByLeague(ctx context.Context, leagueID string, filter FixtureFilter) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByLeague", attribute.String("league_id", leagueID))
	defer span.End()

	if filter.Round < 0 {
		return nil, fmt.Errorf("%w: round must be >= 1", ErrInvalidInput)
	}

	season, err := s.Season(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	matches := season.Matches
	if teamID := strings.TrimSpace(filter.TeamID); teamID != "" {
		if !containsTeam(season.Teams, teamID) {
			return nil, fmt.Errorf("%w: team=%s league=%s", ErrNotFound, teamID, season.League.ID)
		}
		matches = fixture.ByTeam(matches, teamID)
	}
	if filter.Round > 0 {
		matches = fixture.ByRound(matches, filter.Round)
	}

	return matches, nil
}

func (s *FixtureService) ListRounds(ctx context.Context, leagueID string) ([]fixture.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListRounds", attribute.String("league_id", leagueID))
	defer span.End()

	season, err := s.Season(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return fixture.GroupByRound(season.Matches), nil
}

func (s *FixtureService) GetRound(ctx context.Context, leagueID string, round int) (fixture.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetRound", attribute.String("league_id", leagueID), attribute.Int("round", round))
	defer span.End()

	if round < 1 {
		return fixture.Round{}, fmt.Errorf("%w: round must be >= 1", ErrInvalidInput)
	}

	season, err := s.Season(ctx, leagueID)
	if err != nil {
		return fixture.Round{}, err
	}

	rounds := fixture.GroupByRound(fixture.ByRound(season.Matches, round))
	if len(rounds) == 0 {
		return fixture.Round{}, fmt.Errorf("%w: round=%d league=%s", ErrNotFound, round, season.League.ID)
	}

	return rounds[0], nil
}

func (s *FixtureService) GetMatch(ctx context.Context, leagueID string, matchID int64) (fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetMatch", attribute.String("league_id", leagueID), attribute.Int64("match_id", matchID))
	defer span.End()

	if matchID < 1 {
		return fixture.Match{}, fmt.Errorf("%w: match id must be >= 1", ErrInvalidInput)
	}

	season, err := s.Season(ctx, leagueID)
	if err != nil {
		return fixture.Match{}, err
	}

	for _, m := range season.Matches {
		if m.ID == matchID {
			return m, nil
		}
	}

	return fixture.Match{}, fmt.Errorf("%w: match=%d league=%s", ErrNotFound, matchID, season.League.ID)
}

// ListUpcoming returns the next limit unplayed matches on or after from. A
// zero from means today.
func (s *FixtureService) ListUpcoming(ctx context.Context, leagueID string, from time.Time, limit int) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListUpcoming", attribute.String("league_id", leagueID))
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	if from.IsZero() {
		from = s.now().UTC()
	}

	season, err := s.Season(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return fixture.Upcoming(season.Matches, from, limit), nil
}

func (s *FixtureService) ListRecent(ctx context.Context, leagueID string, limit int) ([]fixture.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListRecent", attribute.String("league_id", leagueID))
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	season, err := s.Season(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return fixture.Recent(season.Matches, limit), nil
}

// Generate builds a calendar for an ad-hoc roster. Unset settings fall back
// to the service defaults; explicit values are validated as given.
func (s *FixtureService) Generate(ctx context.Context, input GenerateScheduleInput) ([]fixture.Match, error) {
	_, span := startUsecaseSpan(ctx, "usecase.FixtureService.Generate", attribute.Int("teams", len(input.Teams)))
	defer span.End()

	cfg := s.defaults.config(input.StartDate)
	if input.SpacingDays != nil {
		cfg.SpacingDays = *input.SpacingDays
	}
	if input.SecondLegOffsetMonths != nil {
		cfg.SecondLegOffsetMonths = *input.SecondLegOffsetMonths
	}
	if kickoff := strings.TrimSpace(input.KickoffTime); kickoff != "" {
		cfg.KickoffTime = kickoff
	}

	generate := schedule.GenerateDoubleRoundRobin
	if input.SingleLeg {
		generate = schedule.GenerateSingleRoundRobin
	}

	matches, err := generate(input.Teams, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	return matches, nil
}

func calendarKey(leagueID string, cfg schedule.Config, entrants []schedule.Entrant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "calendar:%s:%s:%d:%d:%s", leagueID, cfg.StartDate.Format(fixture.DateLayout), cfg.SpacingDays, cfg.SecondLegOffsetMonths, cfg.KickoffTime)
	for _, e := range entrants {
		b.WriteByte(':')
		b.WriteString(e.TeamID)
		b.WriteByte('@')
		b.WriteString(e.Venue)
	}
	return b.String()
}

func containsTeam(teams []team.Team, teamID string) bool {
	for _, t := range teams {
		if t.ID == teamID {
			return true
		}
	}
	return false
}
