package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/tornea-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tornea-league/internal/platform/cache"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func newSeededOverviewService(t *testing.T) *OverviewService {
	t.Helper()

	logger := logging.NewNop()
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())

	leagues := NewLeagueService(leagueRepo, teamRepo)
	fixtures := NewFixtureService(leagueRepo, teamRepo, memory.NewResultRepository(memory.SeedResults()), cache.NewStore(time.Minute), DefaultScheduleDefaults(), logger)
	standings := NewStandingService(fixtures, leaguestanding.DefaultOptions(), 2, logger)
	scorers := NewTopScorerService(memory.NewIncidentRepository(memory.SeedIncidents()), fixtures, logger)

	service := NewOverviewService(leagues, fixtures, standings, scorers)
	service.now = func() time.Time { return time.Date(2025, 3, 29, 9, 0, 0, 0, time.UTC) }
	fixtures.now = service.now
	return service
}

func TestOverviewService_Get(t *testing.T) {
	t.Parallel()

	service := newSeededOverviewService(t)

	got, err := service.Get(context.Background(), memory.LeagueIDLigaColombia)
	require.NoError(t, err)
	require.Equal(t, memory.LeagueIDLigaColombia, got.League.ID)
	require.Len(t, got.Teams, 16)
	require.Len(t, got.Standings.Rows, 16)
	require.Empty(t, got.Standings.Diagnostics)
	require.Equal(t, 30, got.Rounds)
	require.Equal(t, 4, got.CompletedRounds)
	require.Len(t, got.Recent, defaultOverviewLimit)
	require.Len(t, got.Upcoming, defaultOverviewLimit)
	require.Len(t, got.TopScorers, defaultOverviewLimit)

	totalPlayed := 0
	for _, row := range got.Standings.Rows {
		totalPlayed += row.Played
	}
	require.Equal(t, 2*32, totalPlayed)

	for _, m := range got.Upcoming {
		require.False(t, m.Status.IsFinished())
		require.False(t, m.Date.Before(time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)))
	}
	require.Equal(t, 1, got.TopScorers[0].Rank)
}

func TestOverviewService_Get_UnknownLeague(t *testing.T) {
	t.Parallel()

	service := newSeededOverviewService(t)
	if _, err := service.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
