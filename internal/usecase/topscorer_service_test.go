package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
	topscorersmock "github.com/riskibarqy/tornea-league/internal/mocks/domain/topscorers"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopScorerService_ListByLeague_CountsFinishedMatchesOnly(t *testing.T) {
	t.Parallel()

	const leagueID = "col-liga-2025"
	broken := played(3, "a", "b", 0, 0)
	broken.AwayGoals = nil
	calendar := &stubSeasonCalendar{seasons: map[string]SeasonCalendar{
		leagueID: {
			League: league.League{ID: leagueID},
			Matches: []fixture.Match{
				played(1, "a", "b", 2, 0),
				{ID: 2, HomeTeamID: "b", AwayTeamID: "a", Status: fixture.StatusInProgress},
				broken,
			},
		},
	}}

	incidentRepo := topscorersmock.NewRepository(t)
	incidentRepo.
		On("ListIncidentsByLeague", mock.Anything, leagueID).
		Return([]topscorers.Incident{
			{MatchID: 1, PlayerID: "p1", TeamID: "a", Kind: topscorers.KindGoal},
			{MatchID: 1, PlayerID: "p2", TeamID: "a", Kind: topscorers.KindPenaltyGoal},
			{MatchID: 1, PlayerID: "p1", TeamID: "a", Kind: topscorers.KindAssist},
			{MatchID: 2, PlayerID: "p3", TeamID: "b", Kind: topscorers.KindGoal},
			{MatchID: 3, PlayerID: "p3", TeamID: "b", Kind: topscorers.KindGoal},
		}, nil).
		Once()

	service := NewTopScorerService(incidentRepo, calendar, logging.NewNop())

	got, err := service.ListByLeague(context.Background(), leagueID, 0)
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(got.Scorers) != 2 {
		t.Fatalf("expected 2 scorers, got %+v", got.Scorers)
	}
	if got.Scorers[0].PlayerID != "p1" || got.Scorers[0].Goals != 1 || got.Scorers[0].Assists != 1 {
		t.Fatalf("unexpected leader: %+v", got.Scorers[0])
	}
	if got.Scorers[1].PlayerID != "p2" || got.Scorers[1].PenaltyGoals != 1 || got.Scorers[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", got.Scorers[1])
	}
}

func TestTopScorerService_ListByLeague_RepositoryFailure(t *testing.T) {
	t.Parallel()

	const leagueID = "col-liga-2025"
	calendar := &stubSeasonCalendar{seasons: map[string]SeasonCalendar{leagueID: {League: league.League{ID: leagueID}}}}
	incidentRepo := topscorersmock.NewRepository(t)
	incidentRepo.On("ListIncidentsByLeague", mock.Anything, leagueID).Return(nil, errors.New("timeout")).Once()

	service := NewTopScorerService(incidentRepo, calendar, nil)
	_, err := service.ListByLeague(context.Background(), leagueID, 5)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestTopScorerService_Compute(t *testing.T) {
	t.Parallel()

	service := NewTopScorerService(nil, nil, logging.NewNop())
	incidents := []topscorers.Incident{
		{MatchID: 1, PlayerID: "p1", Kind: topscorers.KindGoal},
		{MatchID: 2, PlayerID: "p2", Kind: topscorers.KindGoal},
		{MatchID: 2, PlayerID: "p2", Kind: topscorers.KindGoal},
		{MatchID: 2, PlayerID: "", Kind: topscorers.KindGoal},
	}

	all, err := service.Compute(context.Background(), incidents, nil, 0)
	require.NoError(t, err)
	require.Len(t, all.Scorers, 2)
	require.Equal(t, "p2", all.Scorers[0].PlayerID)
	require.Len(t, all.Diagnostics, 1)

	onlyFirst, err := service.Compute(context.Background(), incidents, []int64{1}, 0)
	require.NoError(t, err)
	require.Len(t, onlyFirst.Scorers, 1)
	require.Equal(t, "p1", onlyFirst.Scorers[0].PlayerID)

	limited, err := service.Compute(context.Background(), incidents, nil, 1)
	require.NoError(t, err)
	require.Len(t, limited.Scorers, 1)

	_, err = service.Compute(context.Background(), incidents, nil, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}
