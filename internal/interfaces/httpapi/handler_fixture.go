package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/tornea-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

const defaultUpcomingLimit = 10

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	round, err := parseRound(r.URL.Query().Get("round"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	filter := usecase.FixtureFilter{
		TeamID: strings.TrimSpace(r.URL.Query().Get("team")),
		Round:  round,
	}

	fixtures, err := h.fixtureService.ListByLeague(ctx, leagueID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", leagueID, "team_id", filter.TeamID, "round", filter.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed while mapping fixtures", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(fixtures, names))
}

func (h *Handler) GetFixtureByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	matchID, err := parseMatchID(r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	match, err := h.fixtureService.GetMatch(ctx, leagueID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "league_id", leagueID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(match, names))
}

func (h *Handler) ListUpcomingFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingFixturesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	from, err := parseDate("from", r.URL.Query().Get("from"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"), defaultUpcomingLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.fixtureService.ListUpcoming(ctx, leagueID, from, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list upcoming fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(fixtures, names))
}

func (h *Handler) ListRecentFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentFixturesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	limit, err := parseLimit(r.URL.Query().Get("limit"), defaultUpcomingLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.fixtureService.ListRecent(ctx, leagueID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(fixtures, names))
}

func (h *Handler) ListRoundsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoundsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	rounds, err := h.fixtureService.ListRounds(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]roundDTO, 0, len(rounds))
	for _, round := range rounds {
		items = append(items, roundToDTO(round, names))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetRoundByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	span.SetAttributes(attribute.String("league_id", leagueID))
	number, err := parseRound(r.PathValue("round"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	round, err := h.fixtureService.GetRound(ctx, leagueID, number)
	if err != nil {
		h.logger.WarnContext(ctx, "get round failed", "league_id", leagueID, "round", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	names, err := h.teamNamesByLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundToDTO(round, names))
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateSchedule")
	defer span.End()

	var req generateScheduleRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.fixtureService.Generate(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "generate schedule failed", "teams", len(input.Teams), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(matches, nil))
}
