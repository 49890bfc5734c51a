package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
	"github.com/riskibarqy/tornea-league/internal/domain/league"
	"github.com/riskibarqy/tornea-league/internal/domain/leaguestanding"
	"github.com/riskibarqy/tornea-league/internal/domain/player"
	"github.com/riskibarqy/tornea-league/internal/domain/playerstats"
	"github.com/riskibarqy/tornea-league/internal/domain/schedule"
	"github.com/riskibarqy/tornea-league/internal/domain/team"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
	"github.com/riskibarqy/tornea-league/internal/usecase"
)

type entrantRequest struct {
	TeamID string `json:"team_id" validate:"required"`
	Venue  string `json:"venue" validate:"omitempty,max=200"`
}

type generateScheduleRequest struct {
	Teams                 []entrantRequest `json:"teams" validate:"required,dive"`
	StartDate             string           `json:"start_date" validate:"required"`
	SpacingDays           *int             `json:"spacing_days" validate:"omitempty,min=1"`
	SecondLegOffsetMonths *int             `json:"second_leg_offset_months" validate:"omitempty,min=0"`
	KickoffTime           string           `json:"kickoff_time" validate:"omitempty"`
	SingleLeg             bool             `json:"single_leg"`
}

type matchRequest struct {
	ID         int64  `json:"id"`
	HomeTeamID string `json:"home_team_id" validate:"required"`
	AwayTeamID string `json:"away_team_id" validate:"required"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Round      int    `json:"round" validate:"min=0"`
	Venue      string `json:"venue"`
	Status     string `json:"status"`
	HomeGoals  *int   `json:"home_goals" validate:"omitempty,min=0"`
	AwayGoals  *int   `json:"away_goals" validate:"omitempty,min=0"`
}

type standingsRequest struct {
	Roster     []string       `json:"roster" validate:"required"`
	Matches    []matchRequest `json:"matches" validate:"dive"`
	TieBreak   string         `json:"tie_break"`
	FormLength *int           `json:"form_length"`
}

type batchStandingsRequest struct {
	Items []standingsRequest `json:"items" validate:"required,min=1,dive"`
}

type incidentRequest struct {
	MatchID  int64  `json:"match_id"`
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Kind     string `json:"kind" validate:"required"`
	Minute   int    `json:"minute" validate:"min=0"`
}

type topScorersRequest struct {
	Incidents        []incidentRequest `json:"incidents" validate:"dive"`
	FinishedMatchIDs []int64           `json:"finished_match_ids"`
	Limit            int               `json:"limit" validate:"min=0"`
}

type healthDTO struct {
	Status string          `json:"status"`
	Caches []cacheStatsDTO `json:"caches"`
}

type cacheStatsDTO struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Loads   int64  `json:"loads"`
}

type leaguePublicDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Season      string `json:"season"`
	SeasonStart string `json:"season_start"`
	IsDefault   bool   `json:"is_default"`
}

type teamDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	Short    string `json:"short"`
	City     string `json:"city,omitempty"`
	Venue    string `json:"venue,omitempty"`
}

type fixtureDTO struct {
	ID           int64  `json:"id"`
	Round        int    `json:"round"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	HomeTeamID   string `json:"home_team_id"`
	HomeTeamName string `json:"home_team_name,omitempty"`
	AwayTeamID   string `json:"away_team_id"`
	AwayTeamName string `json:"away_team_name,omitempty"`
	Venue        string `json:"venue"`
	Status       string `json:"status"`
	HomeGoals    *int   `json:"home_goals"`
	AwayGoals    *int   `json:"away_goals"`
}

type roundDTO struct {
	Number    int          `json:"number"`
	Date      string       `json:"date"`
	Completed bool         `json:"completed"`
	Matches   []fixtureDTO `json:"matches"`
}

type leagueStandingDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

type matchDiagnosticDTO struct {
	MatchID int64  `json:"match_id"`
	Reason  string `json:"reason"`
}

type standingsTableDTO struct {
	Rows        []leagueStandingDTO  `json:"rows"`
	Diagnostics []matchDiagnosticDTO `json:"diagnostics"`
}

type batchStandingsItemDTO struct {
	Index int                `json:"index"`
	Table *standingsTableDTO `json:"table,omitempty"`
	Error *googleErrorItem   `json:"error,omitempty"`
}

type topScorerDTO struct {
	Rank         int    `json:"rank"`
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name,omitempty"`
	TeamID       string `json:"team_id"`
	TeamName     string `json:"team_name,omitempty"`
	Goals        int    `json:"goals"`
	PenaltyGoals int    `json:"penalty_goals"`
	Assists      int    `json:"assists"`
}

type playerDTO struct {
	ID          string `json:"id"`
	LeagueID    string `json:"league_id"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name,omitempty"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Number      int    `json:"number"`
	Nationality string `json:"nationality,omitempty"`
}

type playerStatsDTO struct {
	PlayerID     string `json:"player_id"`
	TeamID       string `json:"team_id"`
	Appearances  int    `json:"appearances"`
	Goals        int    `json:"goals"`
	PenaltyGoals int    `json:"penalty_goals"`
	OwnGoals     int    `json:"own_goals"`
	Assists      int    `json:"assists"`
	YellowCards  int    `json:"yellow_cards"`
	RedCards     int    `json:"red_cards"`
}

type playerDetailDTO struct {
	playerDTO
	Statistics playerStatsDTO `json:"statistics"`
}

type topScorerTableDTO struct {
	Scorers     []topScorerDTO `json:"scorers"`
	Diagnostics []string       `json:"diagnostics"`
}

type leagueOverviewDTO struct {
	League          leaguePublicDTO   `json:"league"`
	Teams           []teamDTO         `json:"teams"`
	Standings       standingsTableDTO `json:"standings"`
	Upcoming        []fixtureDTO      `json:"upcoming"`
	Recent          []fixtureDTO      `json:"recent"`
	TopScorers      []topScorerDTO    `json:"top_scorers"`
	Rounds          int               `json:"rounds"`
	CompletedRounds int               `json:"completed_rounds"`
}

func (req generateScheduleRequest) toInput() (usecase.GenerateScheduleInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return usecase.GenerateScheduleInput{}, err
	}

	teams := make([]schedule.Entrant, 0, len(req.Teams))
	for _, t := range req.Teams {
		teams = append(teams, schedule.Entrant{
			TeamID: strings.TrimSpace(t.TeamID),
			Venue:  strings.TrimSpace(t.Venue),
		})
	}

	return usecase.GenerateScheduleInput{
		Teams:                 teams,
		StartDate:             start,
		SpacingDays:           req.SpacingDays,
		SecondLegOffsetMonths: req.SecondLegOffsetMonths,
		KickoffTime:           strings.TrimSpace(req.KickoffTime),
		SingleLeg:             req.SingleLeg,
	}, nil
}

func (req standingsRequest) toInput() (usecase.StandingsInput, error) {
	matches := make([]fixture.Match, 0, len(req.Matches))
	for i, m := range req.Matches {
		status, err := fixture.ParseStatus(m.Status)
		if err != nil {
			return usecase.StandingsInput{}, fmt.Errorf("%w: matches[%d]: %v", usecase.ErrInvalidInput, i, err)
		}
		date, err := parseDate(fmt.Sprintf("matches[%d].date", i), m.Date)
		if err != nil {
			return usecase.StandingsInput{}, err
		}
		id := m.ID
		if id == 0 {
			id = int64(i + 1)
		}
		matches = append(matches, fixture.Match{
			ID:         id,
			HomeTeamID: strings.TrimSpace(m.HomeTeamID),
			AwayTeamID: strings.TrimSpace(m.AwayTeamID),
			Date:       date,
			Time:       strings.TrimSpace(m.Time),
			Round:      m.Round,
			Venue:      m.Venue,
			Status:     status,
			HomeGoals:  m.HomeGoals,
			AwayGoals:  m.AwayGoals,
		})
	}

	roster := make([]string, 0, len(req.Roster))
	for _, teamID := range req.Roster {
		roster = append(roster, strings.TrimSpace(teamID))
	}

	return usecase.StandingsInput{
		Roster:     roster,
		Matches:    matches,
		TieBreak:   req.TieBreak,
		FormLength: req.FormLength,
	}, nil
}

func (req topScorersRequest) toIncidents() []topscorers.Incident {
	out := make([]topscorers.Incident, 0, len(req.Incidents))
	for _, inc := range req.Incidents {
		kind, err := topscorers.ParseKind(inc.Kind)
		if err != nil {
			// Unknown kinds are reported back as diagnostics by the aggregator.
			kind = topscorers.Kind(inc.Kind)
		}
		out = append(out, topscorers.Incident{
			MatchID:  inc.MatchID,
			PlayerID: strings.TrimSpace(inc.PlayerID),
			TeamID:   strings.TrimSpace(inc.TeamID),
			Kind:     kind,
			Minute:   inc.Minute,
		})
	}
	return out
}

func leagueToPublicDTO(ctx context.Context, v league.League) leaguePublicDTO {
	_, span := startSpan(ctx, "httpapi.leagueToPublicDTO")
	defer span.End()

	return leaguePublicDTO{
		ID:          v.ID,
		Name:        v.Name,
		CountryCode: v.CountryCode,
		Season:      v.Season,
		SeasonStart: formatDate(v.SeasonStart),
		IsDefault:   v.IsDefault,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	_, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:       v.ID,
		LeagueID: v.LeagueID,
		Name:     v.Name,
		Short:    v.Short,
		City:     v.City,
		Venue:    v.Venue,
	}
}

func teamNames(teams []team.Team) map[string]string {
	out := make(map[string]string, len(teams))
	for _, t := range teams {
		out[t.ID] = t.Name
	}
	return out
}

func fixtureToDTO(v fixture.Match, teamNameByID map[string]string) fixtureDTO {
	return fixtureDTO{
		ID:           v.ID,
		Round:        v.Round,
		Date:         formatDate(v.Date),
		Time:         v.Time,
		HomeTeamID:   v.HomeTeamID,
		HomeTeamName: teamNameByID[v.HomeTeamID],
		AwayTeamID:   v.AwayTeamID,
		AwayTeamName: teamNameByID[v.AwayTeamID],
		Venue:        v.Venue,
		Status:       string(v.Status),
		HomeGoals:    v.HomeGoals,
		AwayGoals:    v.AwayGoals,
	}
}

func fixturesToDTO(items []fixture.Match, teamNameByID map[string]string) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, m := range items {
		out = append(out, fixtureToDTO(m, teamNameByID))
	}
	return out
}

func roundToDTO(v fixture.Round, teamNameByID map[string]string) roundDTO {
	return roundDTO{
		Number:    v.Number,
		Date:      formatDate(v.Date),
		Completed: v.Completed,
		Matches:   fixturesToDTO(v.Matches, teamNameByID),
	}
}

func standingsTableToDTO(ctx context.Context, table leaguestanding.Table, teamNameByID map[string]string) standingsTableDTO {
	_, span := startSpan(ctx, "httpapi.standingsTableToDTO")
	defer span.End()

	rows := make([]leagueStandingDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, leagueStandingDTO{
			Position:       row.Position,
			TeamID:         row.TeamID,
			TeamName:       teamNameByID[row.TeamID],
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Form:           row.Form,
		})
	}

	diagnostics := make([]matchDiagnosticDTO, 0, len(table.Diagnostics))
	for _, d := range table.Diagnostics {
		diagnostics = append(diagnostics, matchDiagnosticDTO{MatchID: d.MatchID, Reason: d.Reason})
	}

	return standingsTableDTO{Rows: rows, Diagnostics: diagnostics}
}

func scorersToDTO(items []topscorers.Scorer, teamNameByID, playerNameByID map[string]string) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(items))
	for _, s := range items {
		out = append(out, topScorerDTO{
			Rank:         s.Rank,
			PlayerID:     s.PlayerID,
			PlayerName:   playerNameByID[s.PlayerID],
			TeamID:       s.TeamID,
			TeamName:     teamNameByID[s.TeamID],
			Goals:        s.Goals,
			PenaltyGoals: s.PenaltyGoals,
			Assists:      s.Assists,
		})
	}
	return out
}

func topScorerTableToDTO(table usecase.TopScorerTable, teamNameByID, playerNameByID map[string]string) topScorerTableDTO {
	diagnostics := make([]string, 0, len(table.Diagnostics))
	for _, d := range table.Diagnostics {
		diagnostics = append(diagnostics, d.Error())
	}
	return topScorerTableDTO{
		Scorers:     scorersToDTO(table.Scorers, teamNameByID, playerNameByID),
		Diagnostics: diagnostics,
	}
}

func playerToDTO(v player.Player, teamNameByID map[string]string) playerDTO {
	return playerDTO{
		ID:          v.ID,
		LeagueID:    v.LeagueID,
		TeamID:      v.TeamID,
		TeamName:    teamNameByID[v.TeamID],
		Name:        v.Name,
		Position:    string(v.Position),
		Number:      v.Number,
		Nationality: v.Nationality,
	}
}

func playersToDTO(items []player.Player, teamNameByID map[string]string) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p, teamNameByID))
	}
	return out
}

func playerStatsToDTO(v playerstats.SeasonStats) playerStatsDTO {
	return playerStatsDTO{
		PlayerID:     v.PlayerID,
		TeamID:       v.TeamID,
		Appearances:  v.Appearances,
		Goals:        v.Goals,
		PenaltyGoals: v.PenaltyGoals,
		OwnGoals:     v.OwnGoals,
		Assists:      v.Assists,
		YellowCards:  v.YellowCards,
		RedCards:     v.RedCards,
	}
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.Format(fixture.DateLayout)
}
