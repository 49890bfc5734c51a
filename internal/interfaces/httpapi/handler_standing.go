package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/tornea-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	table, err := h.standingService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsTableToDTO(ctx, table, names))
}

func (h *Handler) ComputeStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComputeStandings")
	defer span.End()

	var req standingsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingService.Compute(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "compute standings failed", "teams", len(input.Roster), "matches", len(input.Matches), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsTableToDTO(ctx, table, nil))
}

// ComputeStandingsBatch answers 200 when the batch itself is well formed;
// per-item failures are reported inline.
func (h *Handler) ComputeStandingsBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComputeStandingsBatch")
	defer span.End()

	var req batchStandingsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.StandingsInput, 0, len(req.Items))
	for _, item := range req.Items {
		input, err := item.toInput()
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		inputs = append(inputs, input)
	}

	results, err := h.standingService.ComputeBatch(ctx, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "compute standings batch failed", "items", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]batchStandingsItemDTO, 0, len(results))
	for i, res := range results {
		item := batchStandingsItemDTO{Index: i}
		if res.Err != nil {
			mapped := mapError(ctx, res.Err)
			item.Error = &googleErrorItem{Domain: errorDomain, Reason: mapped.Reason, Message: res.Err.Error()}
		} else {
			table := standingsTableToDTO(ctx, res.Table, nil)
			item.Table = &table
		}
		items = append(items, item)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
