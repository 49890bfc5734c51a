package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultBatchWorkers = 4
	maxBatchSize        = 64
	maxFormLength       = 38
)

type seasonCalendarProvider interface {
	Season(ctx context.Context, leagueID string) (SeasonCalendar, error)
}

// StandingsInput is an ad-hoc standings request. An empty TieBreak or a nil
// FormLength uses the service options.
type StandingsInput struct {
	Roster     []string
	Matches    []fixture.Match
	TieBreak   string
	FormLength *int
}

type BatchStandingsResult struct {
	Table leaguestanding.Table
	Err   error
}

type StandingService struct {
	calendar seasonCalendarProvider
	options  leaguestanding.Options
	workers  int
	logger   *logging.Logger
}

func NewStandingService(calendar seasonCalendarProvider, options leaguestanding.Options, workers int, logger *logging.Logger) *StandingService {
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingService{
		calendar: calendar,
		options:  options,
		workers:  workers,
		logger:   logger,
	}
}

// ListByLeague computes the table of a seeded league from its calendar and
// recorded results.
func (s *StandingService) ListByLeague(ctx context.Context, leagueID string) (leaguestanding.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByLeague", attribute.String("league_id", leagueID))
	defer span.End()

	season, err := s.calendar.Season(ctx, leagueID)
	if err != nil {
		return leaguestanding.Table{}, err
	}

	table, err := leaguestanding.Compute(season.Roster(), season.Matches, s.options)
	if err != nil {
		return leaguestanding.Table{}, fmt.Errorf("compute league standings: %v", err)
	}
	s.logDiagnostics(ctx, leagueID, table.Diagnostics)

	return table, nil
}

func (s *StandingService) Compute(ctx context.Context, input StandingsInput) (leaguestanding.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Compute", attribute.Int("teams", len(input.Roster)), attribute.Int("matches", len(input.Matches)))
	defer span.End()

	return s.compute(ctx, input)
}

// ComputeBatch computes independent tables on a bounded worker pool. Results
// keep the order of inputs; a failing input does not fail the batch.
func (s *StandingService) ComputeBatch(ctx context.Context, inputs []StandingsInput) ([]BatchStandingsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ComputeBatch", attribute.Int("size", len(inputs)))
	defer span.End()

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one standings request is required", ErrInvalidInput)
	}
	if len(inputs) > maxBatchSize {
		return nil, fmt.Errorf("%w: batch size %d exceeds %d", ErrInvalidInput, len(inputs), maxBatchSize)
	}

	workerCount := s.workers
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]BatchStandingsResult, len(inputs))
	var workers sync.WaitGroup
	for i := range inputs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			table, err := s.compute(ctx, inputs[i])
			results[i] = BatchStandingsResult{Table: table, Err: err}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit standings task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *StandingService) compute(ctx context.Context, input StandingsInput) (leaguestanding.Table, error) {
	opts, err := s.resolveOptions(input)
	if err != nil {
		return leaguestanding.Table{}, err
	}

	table, err := leaguestanding.Compute(input.Roster, input.Matches, opts)
	if err != nil {
		return leaguestanding.Table{}, fmt.Errorf("compute standings: %w", err)
	}
	s.logDiagnostics(ctx, "", table.Diagnostics)

	return table, nil
}

func (s *StandingService) resolveOptions(input StandingsInput) (leaguestanding.Options, error) {
	opts := s.options
	if input.TieBreak != "" {
		tieBreak, err := leaguestanding.ParseTieBreak(input.TieBreak)
		if err != nil {
			return leaguestanding.Options{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		opts.TieBreak = tieBreak
	}
	if input.FormLength != nil {
		if *input.FormLength < 0 || *input.FormLength > maxFormLength {
			return leaguestanding.Options{}, fmt.Errorf("%w: form length must be between 0 and %d", ErrInvalidInput, maxFormLength)
		}
		opts.FormLength = *input.FormLength
	}
	return opts, nil
}

func (s *StandingService) logDiagnostics(ctx context.Context, leagueID string, diagnostics []leaguestanding.MatchDataError) {
	for _, d := range diagnostics {
		s.logger.WarnContext(ctx, "match skipped in standings", "league_id", leagueID, "match_id", d.MatchID, "reason", d.Reason)
	}
}
