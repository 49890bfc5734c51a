package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerLeagueRoutes serves the seeded leagues.
func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}", handler.GetPlayerDetailsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}/stats", handler.GetPlayerStatsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures", handler.ListFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/upcoming", handler.ListUpcomingFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/recent", handler.ListRecentFixturesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/fixtures/{matchID}", handler.GetFixtureByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rounds", handler.ListRoundsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rounds/{round}", handler.GetRoundByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/topscorers", handler.ListTopScorersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/overview", handler.GetLeagueOverview)
}

// registerComputeRoutes runs the core algorithms on posted input.
func registerComputeRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/schedules", handler.GenerateSchedule)
	mux.HandleFunc("POST /v1/standings", handler.ComputeStandings)
	mux.HandleFunc("POST /v1/standings/batch", handler.ComputeStandingsBatch)
	mux.HandleFunc("POST /v1/topscorers", handler.ComputeTopScorers)
}
