package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	players, err := h.playerService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players, names))
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	span.SetAttributes(attribute.String("league_id", leagueID), attribute.String("team_id", teamID))
	players, err := h.playerService.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players, names))
}

func (h *Handler) GetPlayerDetailsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetailsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	span.SetAttributes(attribute.String("league_id", leagueID), attribute.String("player_id", playerID))
	season, err := h.playerStats.GetSeasonStats(ctx, leagueID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player details failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailDTO{
		playerDTO:  playerToDTO(season.Player, names),
		Statistics: playerStatsToDTO(season.Stats),
	})
}

func (h *Handler) GetPlayerStatsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	span.SetAttributes(attribute.String("league_id", leagueID), attribute.String("player_id", playerID))
	season, err := h.playerStats.GetSeasonStats(ctx, leagueID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(season.Stats))
}
