package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/player"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	"go.opentelemetry.io/otel/attribute"
)

type PlayerService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewPlayerService(leagueRepo league.Repository, teamRepo team.Repository, playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *PlayerService) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByLeague", attribute.String("league_id", leagueID))
	defer span.End()

	l, err := getLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	return players, nil
}

// ListByTeam returns the squad of one team, in registration order.
func (s *PlayerService) ListByTeam(ctx context.Context, leagueID, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam", attribute.String("league_id", leagueID), attribute.String("team_id", teamID))
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	l, err := getLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	_, exists, err := s.teamRepo.GetByID(ctx, l.ID, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s league=%s", ErrNotFound, teamID, l.ID)
	}

	players, err := s.playerRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	out := make([]player.Player, 0)
	for _, p := range players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, leagueID, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer", attribute.String("league_id", leagueID), attribute.String("player_id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	l, err := getLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return player.Player{}, err
	}

	items, err := s.playerRepo.GetByIDs(ctx, l.ID, []string{playerID})
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if len(items) == 0 {
		return player.Player{}, fmt.Errorf("%w: player=%s league=%s", ErrNotFound, playerID, l.ID)
	}

	return items[0], nil
}

// PlayerNames maps the player ids of a league to display names.
func (s *PlayerService) PlayerNames(ctx context.Context, leagueID string) (map[string]string, error) {
	players, err := s.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(players))
	for _, p := range players {
		out[p.ID] = p.Name
	}
	return out, nil
}
