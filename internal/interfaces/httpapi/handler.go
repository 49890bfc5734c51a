package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/platform/cache"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"github.com/riskibarqy/tornea-league/internal/usecase"
)

// maxRequestBodyBytes bounds posted rosters, match lists and batches.
const maxRequestBodyBytes = 4 << 20

type Handler struct {
	leagueService    *usecase.LeagueService
	fixtureService   *usecase.FixtureService
	standingService  *usecase.StandingService
	topScorerService *usecase.TopScorerService
	overviewService  *usecase.OverviewService
	playerService    *usecase.PlayerService
	playerStats      *usecase.PlayerStatsService
	caches           map[string]*cache.Store
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	fixtureService *usecase.FixtureService,
	standingService *usecase.StandingService,
	topScorerService *usecase.TopScorerService,
	overviewService *usecase.OverviewService,
	playerService *usecase.PlayerService,
	playerStats *usecase.PlayerStatsService,
	caches map[string]*cache.Store,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		fixtureService:   fixtureService,
		standingService:  standingService,
		topScorerService: topScorerService,
		overviewService:  overviewService,
		playerService:    playerService,
		playerStats:      playerStats,
		caches:           caches,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	names := make([]string, 0, len(h.caches))
	for name := range h.caches {
		names = append(names, name)
	}
	sort.Strings(names)

	caches := make([]cacheStatsDTO, 0, len(names))
	for _, name := range names {
		store := h.caches[name]
		if store == nil {
			continue
		}
		stats := store.Stats()
		caches = append(caches, cacheStatsDTO{
			Name:    name,
			Entries: stats.Entries,
			Hits:    stats.Hits,
			Misses:  stats.Misses,
			Loads:   stats.Loads,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, healthDTO{Status: "ok", Caches: caches})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst, rejecting unknown fields and
// trailing data, then validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, maxRequestBodyBytes+1)
	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(raw) > maxRequestBodyBytes {
		return fmt.Errorf("%w: request body exceeds %d bytes", usecase.ErrInvalidInput, maxRequestBodyBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}

	decoder := sonic.ConfigDefault.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: request body must contain a single JSON object", usecase.ErrInvalidInput)
	}

	return h.validateRequest(ctx, dst)
}

func parseLimit(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

func parseRound(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: round must be a positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

func parseMatchID(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: match id must be a positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	v, err := time.Parse(fixture.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD", usecase.ErrInvalidInput, field)
	}
	return v, nil
}
