package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/player"
	"github.com/riskibarqy/tornea-league/internal/domain/schedule"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
)

const (
	LeagueIDLigaColombia   = "col-liga-2025"
	LeagueIDLiga1Indonesia = "idn-liga-1-2025"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDLigaColombia,
			Name:        "Torneo TorNEA",
			CountryCode: "CO",
			Season:      "2025",
			SeasonStart: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			IsDefault:   true,
		},
		{
			ID:          LeagueIDLiga1Indonesia,
			Name:        "Liga 1 Indonesia",
			CountryCode: "ID",
			Season:      "2025/2026",
			SeasonStart: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			IsDefault:   false,
		},
	}
}

// SeedLeaguesFrom returns SeedLeagues with the default season moved to start
// on the civil date of start. Every other season keeps its distance to it.
// A zero start keeps the recorded dates.
func SeedLeaguesFrom(start time.Time) []league.League {
	leagues := SeedLeagues()
	if start.IsZero() {
		return leagues
	}

	y, m, d := start.Date()
	anchor := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	shift := anchor.Sub(leagues[0].SeasonStart)
	for i := range leagues {
		leagues[i].SeasonStart = leagues[i].SeasonStart.Add(shift)
	}
	return leagues
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "col-nacional", LeagueID: LeagueIDLigaColombia, Name: "Atlético Nacional", Short: "NAC", City: "Medellín", Venue: "Atanasio Girardot"},
		{ID: "col-medellin", LeagueID: LeagueIDLigaColombia, Name: "Independiente Medellín", Short: "DIM", City: "Medellín", Venue: "Atanasio Girardot"},
		{ID: "col-america", LeagueID: LeagueIDLigaColombia, Name: "América de Cali", Short: "AME", City: "Cali", Venue: "Pascual Guerrero"},
		{ID: "col-millonarios", LeagueID: LeagueIDLigaColombia, Name: "Millonarios FC", Short: "MIL", City: "Bogotá", Venue: "El Campín"},
		{ID: "col-junior", LeagueID: LeagueIDLigaColombia, Name: "Junior FC", Short: "JUN", City: "Barranquilla", Venue: "Metropolitano"},
		{ID: "col-cali", LeagueID: LeagueIDLigaColombia, Name: "Deportivo Cali", Short: "CAL", City: "Cali", Venue: "Deportivo Cali"},
		{ID: "col-santafe", LeagueID: LeagueIDLigaColombia, Name: "Independiente Santa Fe", Short: "SFE", City: "Bogotá", Venue: "El Campín"},
		{ID: "col-envigado", LeagueID: LeagueIDLigaColombia, Name: "Envigado FC", Short: "ENV", City: "Envigado", Venue: "Polideportivo Sur"},
		{ID: "col-equidad", LeagueID: LeagueIDLigaColombia, Name: "La Equidad", Short: "EQU", City: "Bogotá", Venue: "Metropolitano de Techo"},
		{ID: "col-oncecaldas", LeagueID: LeagueIDLigaColombia, Name: "Once Caldas", Short: "ONC", City: "Manizales", Venue: "Palogrande"},
		{ID: "col-tolima", LeagueID: LeagueIDLigaColombia, Name: "Deportes Tolima", Short: "TOL", City: "Ibagué", Venue: "Manuel Murillo Toro"},
		{ID: "col-jaguares", LeagueID: LeagueIDLigaColombia, Name: "Jaguares de Córdoba", Short: "JAG", City: "Montería", Venue: "Jaraguay"},
		{ID: "col-aguilas", LeagueID: LeagueIDLigaColombia, Name: "Águilas Doradas", Short: "AGU", City: "Rionegro", Venue: "Alberto Grisales"},
		{ID: "col-pasto", LeagueID: LeagueIDLigaColombia, Name: "Deportivo Pasto", Short: "PAS", City: "Pasto", Venue: "Departamental Libertad"},
		{ID: "col-patriotas", LeagueID: LeagueIDLigaColombia, Name: "Patriotas Boyacá", Short: "PAT", City: "Tunja", Venue: "La Independencia"},
		{ID: "col-chico", LeagueID: LeagueIDLigaColombia, Name: "Boyacá Chicó", Short: "CHI", City: "Tunja", Venue: "La Independencia"},
		{ID: "idn-persija", LeagueID: LeagueIDLiga1Indonesia, Name: "Persija Jakarta", Short: "PSJ", City: "Jakarta", Venue: "Jakarta International Stadium"},
		{ID: "idn-persib", LeagueID: LeagueIDLiga1Indonesia, Name: "Persib Bandung", Short: "PSB", City: "Bandung", Venue: "Gelora Bandung Lautan Api"},
		{ID: "idn-persebaya", LeagueID: LeagueIDLiga1Indonesia, Name: "Persebaya Surabaya", Short: "PRB", City: "Surabaya", Venue: "Gelora Bung Tomo"},
		{ID: "idn-baliutd", LeagueID: LeagueIDLiga1Indonesia, Name: "Bali United", Short: "BU", City: "Gianyar", Venue: "Kapten I Wayan Dipta"},
	}
}

// SeedPlayers returns the registered squads. Every id credited in
// SeedIncidents has an entry here.
func SeedPlayers() []player.Player {
	col := func(id, teamID, name string, pos player.Position, number int, nationality string) player.Player {
		return player.Player{ID: id, LeagueID: LeagueIDLigaColombia, TeamID: teamID, Name: name, Position: pos, Number: number, Nationality: nationality}
	}
	idn := func(id, teamID, name string, pos player.Position, number int, nationality string) player.Player {
		return player.Player{ID: id, LeagueID: LeagueIDLiga1Indonesia, TeamID: teamID, Name: name, Position: pos, Number: number, Nationality: nationality}
	}

	return []player.Player{
		col("col-david-ospina", "col-nacional", "David Ospina", player.PositionGoalkeeper, 1, "CO"),
		col("col-jefferson-duque", "col-nacional", "Jefferson Duque", player.PositionForward, 9, "CO"),
		col("col-andres-andrade", "col-nacional", "Andrés Felipe Andrade", player.PositionMidfielder, 10, "CO"),
		col("col-diber-cambindo", "col-medellin", "Diber Cambindo", player.PositionForward, 9, "CO"),
		col("col-andres-renteria", "col-america", "Andrés Rentería", player.PositionForward, 19, "CO"),
		col("col-alvaro-montero", "col-millonarios", "Álvaro Montero", player.PositionGoalkeeper, 1, "CO"),
		col("col-leonardo-castro", "col-millonarios", "Leonardo Castro", player.PositionForward, 23, "CO"),
		col("col-cristian-arango", "col-millonarios", "Cristian Arango", player.PositionForward, 7, "CO"),
		col("col-carlos-bacca", "col-junior", "Carlos Bacca", player.PositionForward, 70, "CO"),
		col("col-fabian-sambueza", "col-junior", "Fabián Sambueza", player.PositionMidfielder, 10, "AR"),
		col("col-juan-fernando-caicedo", "col-cali", "Juan Fernando Caicedo", player.PositionForward, 9, "CO"),
		col("col-agustin-palavecino", "col-cali", "Agustín Palavecino", player.PositionMidfielder, 10, "AR"),
		col("col-hugo-rodallega", "col-santafe", "Hugo Rodallega", player.PositionForward, 9, "CO"),
		col("col-jader-duran", "col-envigado", "Jader Durán", player.PositionForward, 11, "CO"),
		col("col-matias-mier", "col-equidad", "Matías Mier", player.PositionMidfielder, 8, "UY"),
		col("col-dayro-moreno", "col-oncecaldas", "Dayro Moreno", player.PositionForward, 17, "CO"),
		col("col-marco-perez", "col-tolima", "Marco Pérez", player.PositionForward, 9, "CO"),
		col("col-sebastian-guzman", "col-jaguares", "Sebastián Guzmán", player.PositionDefender, 4, "CO"),
		col("col-jader-obrian", "col-aguilas", "Jáder Obrian", player.PositionForward, 20, "CO"),
		col("col-jhon-cordoba", "col-pasto", "Jhon Córdoba", player.PositionForward, 9, "CO"),
		col("col-andres-mosquera", "col-patriotas", "Andrés Mosquera", player.PositionDefender, 2, "CO"),
		col("col-jhon-vasquez", "col-chico", "Jhon Vásquez", player.PositionMidfielder, 14, "CO"),
		idn("idn-andritany", "idn-persija", "Andritany Ardhiyasa", player.PositionGoalkeeper, 26, "ID"),
		idn("idn-rizky-ridho", "idn-persija", "Rizky Ridho", player.PositionDefender, 5, "ID"),
		idn("idn-marc-klok", "idn-persib", "Marc Klok", player.PositionMidfielder, 23, "ID"),
		idn("idn-beckham-putra", "idn-persib", "Beckham Putra", player.PositionMidfielder, 7, "ID"),
		idn("idn-bruno-moreira", "idn-persebaya", "Bruno Moreira", player.PositionForward, 10, "BR"),
		idn("idn-ernando-ari", "idn-persebaya", "Ernando Ari", player.PositionGoalkeeper, 1, "ID"),
		idn("idn-ricky-fajrin", "idn-baliutd", "Ricky Fajrin", player.PositionDefender, 24, "ID"),
		idn("idn-irfan-jaya", "idn-baliutd", "Irfan Jaya", player.PositionForward, 41, "ID"),
	}
}

// colombiaScores holds the recorded scores of the first four rounds, in
// calendar emission order.
var colombiaScores = [][2]int{
	{2, 1}, {0, 0}, {1, 3}, {2, 2}, {1, 0}, {3, 1}, {0, 1}, {1, 1},
	{2, 0}, {1, 2}, {0, 0}, {4, 1}, {1, 1}, {2, 3}, {1, 0}, {0, 2},
	{3, 0}, {1, 1}, {2, 1}, {0, 1}, {2, 2}, {1, 0}, {3, 2}, {0, 0},
	{1, 2}, {2, 0}, {1, 1}, {3, 1}, {0, 2}, {2, 1}, {1, 0}, {1, 3},
}

// colombiaScorers lists, per team, the players goals are credited to in turn.
var colombiaScorers = map[string][]string{
	"col-nacional":    {"col-jefferson-duque", "col-andres-andrade"},
	"col-medellin":    {"col-diber-cambindo"},
	"col-america":     {"col-andres-renteria"},
	"col-millonarios": {"col-leonardo-castro", "col-cristian-arango"},
	"col-junior":      {"col-carlos-bacca", "col-fabian-sambueza"},
	"col-cali":        {"col-juan-fernando-caicedo", "col-agustin-palavecino"},
	"col-santafe":     {"col-hugo-rodallega"},
	"col-envigado":    {"col-jader-duran"},
	"col-equidad":     {"col-matias-mier"},
	"col-oncecaldas":  {"col-dayro-moreno"},
	"col-tolima":      {"col-marco-perez"},
	"col-jaguares":    {"col-sebastian-guzman"},
	"col-aguilas":     {"col-jader-obrian"},
	"col-pasto":       {"col-jhon-cordoba"},
	"col-patriotas":   {"col-andres-mosquera"},
	"col-chico":       {"col-jhon-vasquez"},
}

// SeedResults returns the recorded results per league. Match ids refer to the
// double round-robin generated from SeedTeams order, which does not depend on
// the date settings.
func SeedResults() map[string][]fixture.Result {
	calendar := seededFirstLeg(LeagueIDLigaColombia)

	results := make([]fixture.Result, 0, len(colombiaScores)+2)
	for i, score := range colombiaScores {
		home, away := score[0], score[1]
		results = append(results, fixture.Result{
			MatchID:   calendar[i].ID,
			Status:    fixture.StatusFinished,
			HomeGoals: &home,
			AwayGoals: &away,
		})
	}
	next := len(colombiaScores)
	results = append(results,
		fixture.Result{MatchID: calendar[next].ID, Status: fixture.StatusInProgress},
		fixture.Result{MatchID: calendar[next+1].ID, Status: fixture.StatusSuspended},
	)

	return map[string][]fixture.Result{LeagueIDLigaColombia: results}
}

// SeedIncidents credits every seeded goal to the scoring team's listed
// players in turn. Every third goal of a team is a penalty and the other
// listed player, when there is one, gets the assist. Drawn matches book the
// home side's first listed player and a side beaten by three or more loses
// its first listed player to a red card.
func SeedIncidents() map[string][]topscorers.Incident {
	calendar := seededFirstLeg(LeagueIDLigaColombia)
	goalsByTeam := make(map[string]int)

	var incidents []topscorers.Incident
	credit := func(matchID int64, teamID string, goals, minuteBase int) {
		players := colombiaScorers[teamID]
		for g := 0; g < goals; g++ {
			n := goalsByTeam[teamID]
			goalsByTeam[teamID]++

			kind := topscorers.KindGoal
			if n%3 == 2 {
				kind = topscorers.KindPenaltyGoal
			}
			minute := minuteBase + 17*g
			scorer := players[n%len(players)]
			incidents = append(incidents, topscorers.Incident{MatchID: matchID, PlayerID: scorer, TeamID: teamID, Kind: kind, Minute: minute})
			if len(players) > 1 && kind == topscorers.KindGoal {
				incidents = append(incidents, topscorers.Incident{MatchID: matchID, PlayerID: players[(n+1)%len(players)], TeamID: teamID, Kind: topscorers.KindAssist, Minute: minute})
			}
		}
	}

	for i, score := range colombiaScores {
		m := calendar[i]
		credit(m.ID, m.HomeTeamID, score[0], 11)
		credit(m.ID, m.AwayTeamID, score[1], 23)
		if score[0] == score[1] {
			incidents = append(incidents, topscorers.Incident{MatchID: m.ID, PlayerID: colombiaScorers[m.HomeTeamID][0], TeamID: m.HomeTeamID, Kind: topscorers.KindYellowCard, Minute: 64})
		}
		if loser, ok := heavyLoser(m, score); ok {
			incidents = append(incidents, topscorers.Incident{MatchID: m.ID, PlayerID: colombiaScorers[loser][0], TeamID: loser, Kind: topscorers.KindRedCard, Minute: 71})
		}
	}

	return map[string][]topscorers.Incident{LeagueIDLigaColombia: incidents}
}

// heavyLoser reports the side beaten by three goals or more.
func heavyLoser(m fixture.Match, score [2]int) (string, bool) {
	switch {
	case score[0]-score[1] >= 3:
		return m.AwayTeamID, true
	case score[1]-score[0] >= 3:
		return m.HomeTeamID, true
	}
	return "", false
}

func seededFirstLeg(leagueID string) []fixture.Match {
	var entrants []schedule.Entrant
	for _, t := range SeedTeams() {
		if t.LeagueID == leagueID {
			entrants = append(entrants, schedule.Entrant{TeamID: t.ID, Venue: t.Venue})
		}
	}

	var start time.Time
	for _, l := range SeedLeagues() {
		if l.ID == leagueID {
			start = l.SeasonStart
		}
	}

	matches, err := schedule.GenerateSingleRoundRobin(entrants, schedule.DefaultConfig(start))
	if err != nil {
		panic(fmt.Sprintf("seed calendar for %s: %v", leagueID, err))
	}
	return matches
}
