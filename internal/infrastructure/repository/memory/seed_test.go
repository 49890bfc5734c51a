package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
)

func TestSeedData_IsConsistent(t *testing.T) {
	ctx := context.Background()
	leagues := NewLeagueRepository(SeedLeagues())
	teams := NewTeamRepository(SeedTeams())

	items, err := leagues.List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(items) != 2 || items[0].ID != LeagueIDLigaColombia || !items[0].IsDefault {
		t.Fatalf("unexpected leagues: %+v", items)
	}

	for _, l := range items {
		if err := l.Validate(); err != nil {
			t.Fatalf("league %s invalid: %v", l.ID, err)
		}
		roster, err := teams.ListByLeague(ctx, l.ID)
		if err != nil {
			t.Fatalf("list teams: %v", err)
		}
		if len(roster) < 2 || len(roster)%2 != 0 {
			t.Fatalf("league %s has an unschedulable roster of %d", l.ID, len(roster))
		}
		for _, tm := range roster {
			if err := tm.Validate(); err != nil {
				t.Fatalf("team %s invalid: %v", tm.ID, err)
			}
			if tm.Venue == "" {
				t.Fatalf("team %s has no venue", tm.ID)
			}
		}
	}

	if _, ok, _ := teams.GetByID(ctx, LeagueIDLigaColombia, "col-junior"); !ok {
		t.Fatalf("expected col-junior to exist")
	}
	if _, ok, _ := teams.GetByID(ctx, LeagueIDLiga1Indonesia, "col-junior"); ok {
		t.Fatalf("col-junior should not belong to the Indonesian league")
	}
}

func TestSeedResults_AreWellFormed(t *testing.T) {
	results, err := NewResultRepository(SeedResults()).ListResultsByLeague(context.Background(), LeagueIDLigaColombia)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(results) != len(colombiaScores)+2 {
		t.Fatalf("unexpected result count %d", len(results))
	}
	for _, r := range results {
		m := fixture.Match{ID: r.MatchID, Status: r.Status, HomeGoals: r.HomeGoals, AwayGoals: r.AwayGoals}
		if err := m.CheckScore(); err != nil {
			t.Fatalf("result %d: %v", r.MatchID, err)
		}
	}
}

func TestSeedIncidents_MatchRecordedGoals(t *testing.T) {
	incidents, err := NewIncidentRepository(SeedIncidents()).ListIncidentsByLeague(context.Background(), LeagueIDLigaColombia)
	if err != nil {
		t.Fatalf("list incidents: %v", err)
	}

	want := 0
	for _, s := range colombiaScores {
		want += s[0] + s[1]
	}
	got := 0
	for _, inc := range incidents {
		if inc.Kind == topscorers.KindGoal || inc.Kind == topscorers.KindPenaltyGoal {
			got++
		}
	}
	if got != want {
		t.Fatalf("goal incidents = %d, recorded goals = %d", got, want)
	}

	empty, _ := NewIncidentRepository(SeedIncidents()).ListIncidentsByLeague(context.Background(), LeagueIDLiga1Indonesia)
	if len(empty) != 0 {
		t.Fatalf("expected no incidents for the Indonesian league")
	}
}

func TestSeedLeaguesFrom_ShiftsSeasons(t *testing.T) {
	recorded := SeedLeagues()

	same := SeedLeaguesFrom(time.Time{})
	for i := range recorded {
		if !same[i].SeasonStart.Equal(recorded[i].SeasonStart) {
			t.Fatalf("zero start moved league %s", same[i].ID)
		}
	}

	start := time.Date(2026, 9, 9, 18, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	shifted := SeedLeaguesFrom(start)
	want := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	if shifted[0].ID != LeagueIDLigaColombia || !shifted[0].SeasonStart.Equal(want) {
		t.Fatalf("unexpected default season start %s", shifted[0].SeasonStart)
	}

	gap := recorded[1].SeasonStart.Sub(recorded[0].SeasonStart)
	if got := shifted[1].SeasonStart.Sub(shifted[0].SeasonStart); got != gap {
		t.Fatalf("season gap changed from %s to %s", gap, got)
	}
	for _, l := range shifted {
		if err := l.Validate(); err != nil {
			t.Fatalf("league %s invalid: %v", l.ID, err)
		}
	}
}

func TestSeedPlayers_CoverIncidents(t *testing.T) {
	ctx := context.Background()
	players := NewPlayerRepository(SeedPlayers())
	teams := NewTeamRepository(SeedTeams())

	for _, leagueID := range []string{LeagueIDLigaColombia, LeagueIDLiga1Indonesia} {
		squad, err := players.ListByLeague(ctx, leagueID)
		if err != nil {
			t.Fatalf("list players: %v", err)
		}
		if len(squad) == 0 {
			t.Fatalf("league %s has no players", leagueID)
		}
		for _, p := range squad {
			if err := p.Validate(); err != nil {
				t.Fatalf("player %s invalid: %v", p.ID, err)
			}
			if _, ok, _ := teams.GetByID(ctx, leagueID, p.TeamID); !ok {
				t.Fatalf("player %s plays for unknown team %s", p.ID, p.TeamID)
			}
		}
	}

	incidents, err := NewIncidentRepository(SeedIncidents()).ListIncidentsByLeague(ctx, LeagueIDLigaColombia)
	if err != nil {
		t.Fatalf("list incidents: %v", err)
	}
	redCards := 0
	for _, inc := range incidents {
		found, err := players.GetByIDs(ctx, LeagueIDLigaColombia, []string{inc.PlayerID})
		if err != nil {
			t.Fatalf("get players: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("incident player %s is not registered", inc.PlayerID)
		}
		if found[0].TeamID != inc.TeamID {
			t.Fatalf("incident credits %s to %s but the player is registered with %s", inc.PlayerID, inc.TeamID, found[0].TeamID)
		}
		if inc.Kind == topscorers.KindRedCard {
			redCards++
		}
	}
	if redCards == 0 {
		t.Fatalf("expected seeded red cards")
	}
}

func TestPlayerRepository_GetByIDs(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers())

	got, err := repo.GetByIDs(context.Background(), LeagueIDLigaColombia, []string{"col-dayro-moreno", "missing", "col-carlos-bacca"})
	if err != nil {
		t.Fatalf("get players: %v", err)
	}
	if len(got) != 2 || got[0].ID != "col-dayro-moreno" || got[1].ID != "col-carlos-bacca" {
		t.Fatalf("unexpected players: %+v", got)
	}

	other, _ := repo.GetByIDs(context.Background(), LeagueIDLiga1Indonesia, []string{"col-dayro-moreno"})
	if len(other) != 0 {
		t.Fatalf("expected no cross-league match, got %+v", other)
	}
}
