package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/tornea-league/internal/config"
	"github.com/riskibarqy/tornea-league/internal/domain/leaguestanding"
	cacherepo "github.com/riskibarqy/tornea-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/tornea-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tornea-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/tornea-league/internal/platform/cache"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"github.com/riskibarqy/tornea-league/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repoCache := newStore(cfg)
	calendarCache := newStore(cfg)

	seasonStart := seedSeasonStart(cfg, time.Now())
	leagueRepo := cacherepo.NewLeagueRepository(memory.NewLeagueRepository(memory.SeedLeaguesFrom(seasonStart)), repoCache)
	teamRepo := cacherepo.NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), repoCache)
	resultRepo := cacherepo.NewResultRepository(memory.NewResultRepository(memory.SeedResults()), repoCache)
	incidentRepo := cacherepo.NewIncidentRepository(memory.NewIncidentRepository(memory.SeedIncidents()), repoCache)
	playerRepo := cacherepo.NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), repoCache)

	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo)
	fixtureSvc := usecase.NewFixtureService(
		leagueRepo,
		teamRepo,
		resultRepo,
		calendarCache,
		usecase.ScheduleDefaults{
			SpacingDays:           cfg.ScheduleSpacingDays,
			SecondLegOffsetMonths: cfg.ScheduleSecondLegOffsetMonths,
			KickoffTime:           cfg.ScheduleKickoffTime,
		},
		logger.Named("fixtures"),
	)
	standingSvc := usecase.NewStandingService(
		fixtureSvc,
		leaguestanding.Options{
			TieBreak:   cfg.StandingsTieBreak,
			FormLength: cfg.StandingsFormLength,
		},
		cfg.StandingsBatchWorkers,
		logger.Named("standings"),
	)
	topScorerSvc := usecase.NewTopScorerService(incidentRepo, fixtureSvc, logger.Named("topscorers"))
	overviewSvc := usecase.NewOverviewService(leagueSvc, fixtureSvc, standingSvc, topScorerSvc)
	playerSvc := usecase.NewPlayerService(leagueRepo, teamRepo, playerRepo)
	playerStatsSvc := usecase.NewPlayerStatsService(playerSvc, incidentRepo, fixtureSvc, logger.Named("players"))

	handler := httpapi.NewHandler(
		leagueSvc,
		fixtureSvc,
		standingSvc,
		topScorerSvc,
		overviewSvc,
		playerSvc,
		playerStatsSvc,
		map[string]*cache.Store{
			"calendar":   calendarCache,
			"repository": repoCache,
		},
		logger.Named("httpapi"),
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	logger.Info("http server configured",
		"addr", cfg.HTTPAddr,
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
		"tie_break", string(cfg.StandingsTieBreak),
		"seed_season_start", seasonStart.Format(time.DateOnly),
	)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func newStore(cfg config.Config) *cache.Store {
	if !cfg.CacheEnabled {
		return cache.NewDisabledStore()
	}
	return cache.NewStore(cfg.CacheTTL)
}

// seedLeadDays places the seeded default season so that, at the default
// weekly spacing, its four recorded rounds are over and round five is due on
// the day the process starts.
const seedLeadDays = 35

func seedSeasonStart(cfg config.Config, now time.Time) time.Time {
	if !cfg.SeedSeasonStart.IsZero() {
		return cfg.SeedSeasonStart
	}
	y, m, d := now.UTC().AddDate(0, 0, -seedLeadDays).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
