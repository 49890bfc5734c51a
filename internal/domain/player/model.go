package player

import (
	"fmt"
	"strings"
)

// Position is the pitch role a player is registered with.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

var positionAliases = map[string]Position{
	"GK":             PositionGoalkeeper,
	"GOALKEEPER":     PositionGoalkeeper,
	"PORTERO":        PositionGoalkeeper,
	"DEF":            PositionDefender,
	"DEFENDER":       PositionDefender,
	"DEFENSA":        PositionDefender,
	"MID":            PositionMidfielder,
	"MIDFIELDER":     PositionMidfielder,
	"MEDIOCAMPISTA":  PositionMidfielder,
	"CENTROCAMPISTA": PositionMidfielder,
	"FWD":            PositionForward,
	"FORWARD":        PositionForward,
	"DELANTERO":      PositionForward,
}

// ParsePosition accepts the short codes and their English or Spanish names.
func ParsePosition(v string) (Position, error) {
	if p, ok := positionAliases[strings.ToUpper(strings.TrimSpace(v))]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown player position %q", v)
}

// Player is a registered member of a team squad.
type Player struct {
	ID          string
	LeagueID    string
	TeamID      string
	Name        string
	Position    Position
	Number      int
	Nationality string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("player league id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Number < 1 || p.Number > 99 {
		return fmt.Errorf("player number must be between 1 and 99")
	}

	return nil
}
