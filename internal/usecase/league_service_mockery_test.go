package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	leaguemock "github.com/riskibarqy/tornea-league/internal/mocks/domain/league"
	teammock "github.com/riskibarqy/tornea-league/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListTeamsByLeague_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), traceKey{}, "trace-456")
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo)
	leagueID := "col-liga-2025"
	expectedTeams := []team.Team{
		{ID: "col-nacional", LeagueID: leagueID, Name: "Atlético Nacional", Short: "NAC", Venue: "Atanasio Girardot"},
		{ID: "col-medellin", LeagueID: leagueID, Name: "Independiente Medellín", Short: "DIM", Venue: "Atanasio Girardot"},
	}

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{ID: leagueID}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(expectedTeams, nil).
		Once()

	got, err := service.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	if len(got) != len(expectedTeams) {
		t.Fatalf("unexpected team count: got=%d want=%d", len(got), len(expectedTeams))
	}
	if got[0].ID != expectedTeams[0].ID {
		t.Fatalf("unexpected team id: got=%s want=%s", got[0].ID, expectedTeams[0].ID)
	}
}

func TestLeagueService_ListTeamsByLeague_LeagueNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo)
	leagueID := "missing-league"

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ListTeamsByLeague(ctx, leagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_ListTeamsByLeague_RequiresLeagueID(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(leaguemock.NewRepository(t), teammock.NewRepository(t))

	_, err := service.ListTeamsByLeague(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeagueService_ListLeagues_WrapsRepositoryError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, teammock.NewRepository(t))

	boom := errors.New("boom")
	leagueRepo.On("List", mock.Anything).Return(nil, boom).Once()

	_, err := service.ListLeagues(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

type traceKey struct{}
