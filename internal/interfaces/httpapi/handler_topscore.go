package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const defaultTopScorerLimit = 20

func (h *Handler) ListTopScorersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorersByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	limit, err := parseLimit(r.URL.Query().Get("limit"), defaultTopScorerLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.topScorerService.ListByLeague(ctx, leagueID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerNames, err := h.playerService.PlayerNames(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed while mapping top scorers", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topScorerTableToDTO(table, names, playerNames))
}

func (h *Handler) ComputeTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComputeTopScorers")
	defer span.End()

	var req topScorersRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.topScorerService.Compute(ctx, req.toIncidents(), req.FinishedMatchIDs, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "compute top scorers failed", "incidents", len(req.Incidents), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topScorerTableToDTO(table, nil, nil))
}
