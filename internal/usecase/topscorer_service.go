package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type TopScorerTable struct {
	Scorers     []topscorers.Scorer
	Diagnostics []error
}

type TopScorerService struct {
	incidentRepo topscorers.Repository
	calendar     seasonCalendarProvider
	logger       *logging.Logger
}

func NewTopScorerService(incidentRepo topscorers.Repository, calendar seasonCalendarProvider, logger *logging.Logger) *TopScorerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TopScorerService{
		incidentRepo: incidentRepo,
		calendar:     calendar,
		logger:       logger,
	}
}

// ListByLeague ranks the recorded incidents of a seeded league, counting only
// matches that are finished with a consistent score.
func (s *TopScorerService) ListByLeague(ctx context.Context, leagueID string, limit int) (TopScorerTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorerService.ListByLeague", attribute.String("league_id", leagueID))
	defer span.End()

	if limit < 0 {
		return TopScorerTable{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	season, err := s.calendar.Season(ctx, leagueID)
	if err != nil {
		return TopScorerTable{}, err
	}

	finished := finishedMatches(season.Matches)

	incidents, err := s.incidentRepo.ListIncidentsByLeague(ctx, season.League.ID)
	if err != nil {
		return TopScorerTable{}, fmt.Errorf("%w: list incidents: %v", ErrDependencyUnavailable, err)
	}

	table := s.rank(ctx, incidents, finished, limit)
	for _, d := range table.Diagnostics {
		s.logger.WarnContext(ctx, "incident skipped in scorer table", "league_id", season.League.ID, "error", d)
	}
	return table, nil
}

// Compute ranks ad-hoc incidents. A nil finishedMatchIDs counts every
// incident; a non-nil one restricts counting to those matches.
func (s *TopScorerService) Compute(ctx context.Context, incidents []topscorers.Incident, finishedMatchIDs []int64, limit int) (TopScorerTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorerService.Compute", attribute.Int("incidents", len(incidents)))
	defer span.End()

	if limit < 0 {
		return TopScorerTable{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}

	var finished map[int64]struct{}
	if finishedMatchIDs != nil {
		finished = make(map[int64]struct{}, len(finishedMatchIDs))
		for _, id := range finishedMatchIDs {
			finished[id] = struct{}{}
		}
	}

	return s.rank(ctx, incidents, finished, limit), nil
}

// finishedMatches returns the ids of matches that are finished with a
// consistent score. Only their incidents count toward season tallies.
func finishedMatches(matches []fixture.Match) map[int64]struct{} {
	out := make(map[int64]struct{})
	for _, m := range matches {
		if m.Status.IsFinished() && m.CheckScore() == nil {
			out[m.ID] = struct{}{}
		}
	}
	return out
}

func (s *TopScorerService) rank(_ context.Context, incidents []topscorers.Incident, finished map[int64]struct{}, limit int) TopScorerTable {
	scorers, diagnostics := topscorers.Compute(incidents, finished)
	if limit > 0 && len(scorers) > limit {
		scorers = scorers[:limit]
	}
	return TopScorerTable{Scorers: scorers, Diagnostics: diagnostics}
}
