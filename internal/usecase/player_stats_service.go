package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/tornea-league/internal/domain/player"
	"github.com/riskibarqy/tornea-league/internal/domain/playerstats"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// PlayerSeason is a registered player with the tally of its season so far.
type PlayerSeason struct {
	Player player.Player
	Stats  playerstats.SeasonStats
}

type PlayerStatsService struct {
	players      *PlayerService
	incidentRepo topscorers.Repository
	calendar     seasonCalendarProvider
	logger       *logging.Logger
}

func NewPlayerStatsService(players *PlayerService, incidentRepo topscorers.Repository, calendar seasonCalendarProvider, logger *logging.Logger) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStatsService{
		players:      players,
		incidentRepo: incidentRepo,
		calendar:     calendar,
		logger:       logger,
	}
}

// GetSeasonStats tallies the incidents of one player over the finished
// matches of the league season. A player with no counted incident gets a
// zero tally.
func (s *PlayerStatsService) GetSeasonStats(ctx context.Context, leagueID, playerID string) (PlayerSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetSeasonStats", attribute.String("league_id", leagueID), attribute.String("player_id", playerID))
	defer span.End()

	p, err := s.players.GetPlayer(ctx, leagueID, playerID)
	if err != nil {
		return PlayerSeason{}, err
	}

	season, err := s.calendar.Season(ctx, p.LeagueID)
	if err != nil {
		return PlayerSeason{}, err
	}

	incidents, err := s.incidentRepo.ListIncidentsByLeague(ctx, p.LeagueID)
	if err != nil {
		return PlayerSeason{}, fmt.Errorf("%w: list incidents: %v", ErrDependencyUnavailable, err)
	}

	own := make([]topscorers.Incident, 0)
	for _, inc := range incidents {
		if inc.PlayerID == p.ID {
			own = append(own, inc)
		}
	}

	tally, diagnostics := playerstats.Compute(own, finishedMatches(season.Matches))
	for _, d := range diagnostics {
		s.logger.WarnContext(ctx, "incident skipped in player stats", "league_id", p.LeagueID, "player_id", p.ID, "error", d)
	}

	stats, ok := tally[p.ID]
	if !ok {
		stats = playerstats.SeasonStats{PlayerID: p.ID}
	}
	stats.TeamID = p.TeamID

	return PlayerSeason{Player: p, Stats: stats}, nil
}
