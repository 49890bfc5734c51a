package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/schedule"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	"github.com/riskibarqy/tornea-league/internal/infrastructure/repository/memory"
	fixturemock "github.com/riskibarqy/tornea-league/internal/mocks/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/platform/cache"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const seededLeagueID = memory.LeagueIDLigaColombia

func newSeededFixtureService(t *testing.T) (*FixtureService, *cache.Store) {
	t.Helper()
	store := cache.NewStore(time.Minute)
	service := NewFixtureService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewResultRepository(memory.SeedResults()),
		store,
		DefaultScheduleDefaults(),
		logging.NewNop(),
	)
	return service, store
}

func TestFixtureService_Season_MergesResultsAndCachesCalendar(t *testing.T) {
	t.Parallel()

	service, store := newSeededFixtureService(t)
	ctx := context.Background()

	season, err := service.Season(ctx, seededLeagueID)
	if err != nil {
		t.Fatalf("Season error: %v", err)
	}
	if len(season.Teams) != 16 || len(season.Matches) != 16*15 {
		t.Fatalf("unexpected season size: teams=%d matches=%d", len(season.Teams), len(season.Matches))
	}

	finished := 0
	for _, m := range season.Matches {
		if m.Status.IsFinished() {
			finished++
		}
	}
	if finished != 32 {
		t.Fatalf("expected 32 finished matches, got %d", finished)
	}
	if season.Matches[32].Status != fixture.StatusInProgress || season.Matches[33].Status != fixture.StatusSuspended {
		t.Fatalf("unexpected statuses for matches 33/34: %s %s", season.Matches[32].Status, season.Matches[33].Status)
	}

	season.Matches[0].Status = fixture.StatusScheduled
	again, err := service.Season(ctx, seededLeagueID)
	if err != nil {
		t.Fatalf("second Season error: %v", err)
	}
	if !again.Matches[0].Status.IsFinished() {
		t.Fatalf("caller mutation leaked into the cached calendar")
	}
	if loads := store.Stats().Loads; loads != 1 {
		t.Fatalf("expected the calendar to be generated once, got %d", loads)
	}
}

func TestFixtureService_Season_KickoffFollowsDefaults(t *testing.T) {
	t.Parallel()

	defaults := ScheduleDefaults{SpacingDays: 14, SecondLegOffsetMonths: 4, KickoffTime: "19:30"}
	service := NewFixtureService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		nil,
		cache.NewStore(time.Minute),
		defaults,
		nil,
	)

	season, err := service.Season(context.Background(), memory.LeagueIDLiga1Indonesia)
	require.NoError(t, err)
	require.Len(t, season.Matches, 12)

	start := season.League.SeasonStart
	require.True(t, season.Matches[0].Date.Equal(start.AddDate(0, 0, 14)))
	require.Equal(t, "19:30", season.Matches[0].Time)
	require.True(t, season.Matches[6].Date.Equal(schedule.AddMonths(season.Matches[0].Date, 4)))
}

func TestFixtureService_Season_ResultRepositoryFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	resultRepo := fixturemock.NewResultRepository(t)
	resultRepo.
		On("ListResultsByLeague", mock.Anything, seededLeagueID).
		Return(nil, errors.New("connection reset")).
		Once()

	service := NewFixtureService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		resultRepo,
		cache.NewStore(time.Minute),
		DefaultScheduleDefaults(),
		logging.NewNop(),
	)

	_, err := service.Season(ctx, seededLeagueID)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestFixtureService_Season_UnknownResultIsIgnored(t *testing.T) {
	t.Parallel()

	home, away := 1, 0
	resultRepo := fixturemock.NewResultRepository(t)
	resultRepo.
		On("ListResultsByLeague", mock.Anything, memory.LeagueIDLiga1Indonesia).
		Return([]fixture.Result{
			{MatchID: 1, Status: fixture.StatusFinished, HomeGoals: &home, AwayGoals: &away},
			{MatchID: 999, Status: fixture.StatusFinished, HomeGoals: &home, AwayGoals: &away},
		}, nil).
		Once()

	service := NewFixtureService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		resultRepo,
		cache.NewStore(time.Minute),
		DefaultScheduleDefaults(),
		logging.NewNop(),
	)

	season, err := service.Season(context.Background(), memory.LeagueIDLiga1Indonesia)
	require.NoError(t, err)
	require.True(t, season.Matches[0].Status.IsFinished())
	require.Len(t, season.Matches, 12)
}

func TestFixtureService_Season_UnschedulableRoster(t *testing.T) {
	t.Parallel()

	leagueRepo := memory.NewLeagueRepository([]league.League{{ID: "odd", Name: "Odd", CountryCode: "XX", Season: "2025", SeasonStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}})
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "a", LeagueID: "odd", Name: "A"},
		{ID: "b", LeagueID: "odd", Name: "B"},
		{ID: "c", LeagueID: "odd", Name: "C"},
	})
	service := NewFixtureService(leagueRepo, teamRepo, nil, cache.NewStore(time.Minute), DefaultScheduleDefaults(), nil)

	_, err := service.Season(context.Background(), "odd")
	if err == nil {
		t.Fatalf("expected an error for an odd roster")
	}
	if errors.Is(err, schedule.ErrInvalidRoster) {
		t.Fatalf("seeded roster problems must not surface as caller input errors: %v", err)
	}
}

func TestFixtureService_Season_LeagueNotFound(t *testing.T) {
	t.Parallel()

	service, _ := newSeededFixtureService(t)
	if _, err := service.Season(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFixtureService_ListByLeague_Filters(t *testing.T) {
	t.Parallel()

	service, _ := newSeededFixtureService(t)
	ctx := context.Background()

	byTeam, err := service.ListByLeague(ctx, seededLeagueID, FixtureFilter{TeamID: "col-junior"})
	require.NoError(t, err)
	require.Len(t, byTeam, 30)
	for i, m := range byTeam {
		require.True(t, m.Involves("col-junior"))
		if i > 0 {
			require.False(t, m.Date.Before(byTeam[i-1].Date), "team calendar out of order")
		}
	}

	byRound, err := service.ListByLeague(ctx, seededLeagueID, FixtureFilter{Round: 3})
	require.NoError(t, err)
	require.Len(t, byRound, 8)

	both, err := service.ListByLeague(ctx, seededLeagueID, FixtureFilter{TeamID: "col-junior", Round: 3})
	require.NoError(t, err)
	require.Len(t, both, 1)

	_, err = service.ListByLeague(ctx, seededLeagueID, FixtureFilter{TeamID: "idn-persija"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.ListByLeague(ctx, seededLeagueID, FixtureFilter{Round: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFixtureService_Rounds(t *testing.T) {
	t.Parallel()

	service, _ := newSeededFixtureService(t)
	ctx := context.Background()

	rounds, err := service.ListRounds(ctx, seededLeagueID)
	require.NoError(t, err)
	require.Len(t, rounds, 30)
	for i, r := range rounds {
		require.Equal(t, i+1, r.Number)
		require.Len(t, r.Matches, 8)
		require.Equal(t, i < 4, r.Completed, "round %d completion", r.Number)
	}

	round, err := service.GetRound(ctx, seededLeagueID, 16)
	require.NoError(t, err)
	require.Equal(t, 16, round.Number)
	require.True(t, round.Date.Equal(schedule.AddMonths(rounds[0].Date, 3)))

	_, err = service.GetRound(ctx, seededLeagueID, 31)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetRound(ctx, seededLeagueID, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFixtureService_GetMatch(t *testing.T) {
	t.Parallel()

	service, _ := newSeededFixtureService(t)
	ctx := context.Background()

	played, err := service.GetMatch(ctx, seededLeagueID, 32)
	require.NoError(t, err)
	require.Equal(t, int64(32), played.ID)
	require.Equal(t, fixture.StatusFinished, played.Status)
	require.NotNil(t, played.HomeGoals)
	require.NotNil(t, played.AwayGoals)

	last, err := service.GetMatch(ctx, seededLeagueID, 240)
	require.NoError(t, err)
	require.Equal(t, 30, last.Round)
	require.Equal(t, fixture.StatusScheduled, last.Status)

	_, err = service.GetMatch(ctx, seededLeagueID, 241)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetMatch(ctx, seededLeagueID, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.GetMatch(ctx, "missing", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFixtureService_UpcomingAndRecent(t *testing.T) {
	t.Parallel()

	service, _ := newSeededFixtureService(t)
	ctx := context.Background()
	seasonStart := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	upcoming, err := service.ListUpcoming(ctx, seededLeagueID, seasonStart, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{33, 35, 36}, matchIDs(upcoming))

	service.now = func() time.Time { return time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC) }
	later, err := service.ListUpcoming(ctx, seededLeagueID, time.Time{}, 3)
	require.NoError(t, err)
	require.Empty(t, later)

	recent, err := service.ListRecent(ctx, seededLeagueID, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{32, 31}, matchIDs(recent))

	_, err = service.ListUpcoming(ctx, seededLeagueID, seasonStart, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFixtureService_Generate(t *testing.T) {
	t.Parallel()

	service, _ := newSeededFixtureService(t)
	ctx := context.Background()
	teams := []schedule.Entrant{{TeamID: "A", Venue: "a"}, {TeamID: "B", Venue: "b"}, {TeamID: "C", Venue: "c"}, {TeamID: "D", Venue: "d"}}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	matches, err := service.Generate(ctx, GenerateScheduleInput{Teams: teams, StartDate: start})
	require.NoError(t, err)
	require.Len(t, matches, 12)
	require.Equal(t, schedule.DefaultKickoffTime, matches[0].Time)
	require.True(t, matches[0].Date.Equal(start.AddDate(0, 0, schedule.DefaultSpacingDays)))

	single, err := service.Generate(ctx, GenerateScheduleInput{Teams: teams, StartDate: start, SingleLeg: true, KickoffTime: "20:00"})
	require.NoError(t, err)
	require.Len(t, single, 6)
	require.Equal(t, "20:00", single[0].Time)

	sameMonth := 0
	mirrored, err := service.Generate(ctx, GenerateScheduleInput{Teams: teams, StartDate: start, SecondLegOffsetMonths: &sameMonth})
	require.NoError(t, err)
	require.True(t, mirrored[6].Date.Equal(mirrored[0].Date))

	zero := 0
	_, err = service.Generate(ctx, GenerateScheduleInput{Teams: teams, StartDate: start, SpacingDays: &zero})
	require.ErrorIs(t, err, schedule.ErrInvalidConfig)

	_, err = service.Generate(ctx, GenerateScheduleInput{Teams: teams[:3], StartDate: start})
	require.ErrorIs(t, err, schedule.ErrInvalidRoster)

	_, err = service.Generate(ctx, GenerateScheduleInput{Teams: teams})
	require.ErrorIs(t, err, schedule.ErrInvalidConfig)
}

func matchIDs(matches []fixture.Match) []int64 {
	out := make([]int64, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}
