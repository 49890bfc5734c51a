package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaguePublicDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToPublicDTO(ctx, l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToPublicDTO(ctx, item))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	teams, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	overview, err := h.overviewService.Get(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league overview failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	playerNames, err := h.playerService.PlayerNames(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed while mapping overview", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names := teamNames(overview.Teams)
	teams := make([]teamDTO, 0, len(overview.Teams))
	for _, t := range overview.Teams {
		teams = append(teams, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, leagueOverviewDTO{
		League:          leagueToPublicDTO(ctx, overview.League),
		Teams:           teams,
		Standings:       standingsTableToDTO(ctx, overview.Standings, names),
		Upcoming:        fixturesToDTO(overview.Upcoming, names),
		Recent:          fixturesToDTO(overview.Recent, names),
		TopScorers:      scorersToDTO(overview.TopScorers, names, playerNames),
		Rounds:          overview.Rounds,
		CompletedRounds: overview.CompletedRounds,
	})
}

// teamNamesByLeague resolves display names for a league's fixtures and tables.
func (h *Handler) teamNamesByLeague(ctx context.Context, leagueID string) (map[string]string, error) {
	teams, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return teamNames(teams), nil
}
