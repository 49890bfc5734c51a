package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultOverviewLimit = 5

type LeagueOverview struct {
	League          league.League
	Teams           []team.Team
	Standings       leaguestanding.Table
	Upcoming        []fixture.Match
	Recent          []fixture.Match
	TopScorers      []topscorers.Scorer
	Rounds          int
	CompletedRounds int
}

type OverviewService struct {
	leagues   *LeagueService
	fixtures  *FixtureService
	standings *StandingService
	scorers   *TopScorerService
	limit     int
	now       func() time.Time
}

func NewOverviewService(
	leagues *LeagueService,
	fixtures *FixtureService,
	standings *StandingService,
	scorers *TopScorerService,
) *OverviewService {
	return &OverviewService{
		leagues:   leagues,
		fixtures:  fixtures,
		standings: standings,
		scorers:   scorers,
		limit:     defaultOverviewLimit,
		now:       time.Now,
	}
}

// Get loads the league landing view. The parts are fetched concurrently and
// the first failure cancels the rest.
func (s *OverviewService) Get(ctx context.Context, leagueID string) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Get", attribute.String("league_id", leagueID))
	defer span.End()

	l, err := s.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		return LeagueOverview{}, err
	}

	out := LeagueOverview{League: l}
	today := s.now().UTC()

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.leagues.ListTeamsByLeague(ctx, l.ID)
		if err != nil {
			return fmt.Errorf("overview teams: %w", err)
		}
		out.Teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		table, err := s.standings.ListByLeague(ctx, l.ID)
		if err != nil {
			return fmt.Errorf("overview standings: %w", err)
		}
		out.Standings = table
		return nil
	})
	p.Go(func(ctx context.Context) error {
		upcoming, err := s.fixtures.ListUpcoming(ctx, l.ID, today, s.limit)
		if err != nil {
			return fmt.Errorf("overview upcoming fixtures: %w", err)
		}
		out.Upcoming = upcoming
		return nil
	})
	p.Go(func(ctx context.Context) error {
		recent, err := s.fixtures.ListRecent(ctx, l.ID, s.limit)
		if err != nil {
			return fmt.Errorf("overview recent results: %w", err)
		}
		out.Recent = recent
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rounds, err := s.fixtures.ListRounds(ctx, l.ID)
		if err != nil {
			return fmt.Errorf("overview rounds: %w", err)
		}
		out.Rounds = len(rounds)
		for _, r := range rounds {
			if r.Completed {
				out.CompletedRounds++
			}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		table, err := s.scorers.ListByLeague(ctx, l.ID, s.limit)
		if err != nil {
			return fmt.Errorf("overview top scorers: %w", err)
		}
		out.TopScorers = table.Scorers
		return nil
	})

	if err := p.Wait(); err != nil {
		return LeagueOverview{}, err
	}

	return out, nil
}
