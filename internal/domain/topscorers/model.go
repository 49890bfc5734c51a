package topscorers

import (
	"context"
	"fmt"
	"strings"
)

// Kind is the type of a match incident.
type Kind string

const (
	KindGoal         Kind = "GOAL"
	KindPenaltyGoal  Kind = "PENALTY_GOAL"
	KindOwnGoal      Kind = "OWN_GOAL"
	KindAssist       Kind = "ASSIST"
	KindYellowCard   Kind = "YELLOW_CARD"
	KindRedCard      Kind = "RED_CARD"
	KindSubstitution Kind = "SUBSTITUTION"
)

var kinds = map[string]Kind{
	"GOAL":             KindGoal,
	"GOL":              KindGoal,
	"PENALTY_GOAL":     KindPenaltyGoal,
	"PENALTY":          KindPenaltyGoal,
	"GOL_PENAL":        KindPenaltyGoal,
	"OWN_GOAL":         KindOwnGoal,
	"AUTOGOL":          KindOwnGoal,
	"GOL_EN_CONTRA":    KindOwnGoal,
	"ASSIST":           KindAssist,
	"ASISTENCIA":       KindAssist,
	"YELLOW_CARD":      KindYellowCard,
	"TARJETA_AMARILLA": KindYellowCard,
	"RED_CARD":         KindRedCard,
	"TARJETA_ROJA":     KindRedCard,
	"SUBSTITUTION":     KindSubstitution,
	"CAMBIO":           KindSubstitution,
	"SUSTITUCION":      KindSubstitution,
}

func ParseKind(v string) (Kind, error) {
	key := strings.ToUpper(strings.TrimSpace(v))
	key = strings.ReplaceAll(strings.ReplaceAll(key, " ", "_"), "-", "_")
	if k, ok := kinds[key]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown incident kind %q", v)
}

// Repository exposes recorded incidents for a league season.
type Repository interface {
	ListIncidentsByLeague(ctx context.Context, leagueID string) ([]Incident, error)
}

// Incident is one recorded event of a match.
type Incident struct {
	MatchID  int64
	PlayerID string
	TeamID   string
	Kind     Kind
	Minute   int
}

// Scorer is a ranked row of the scorer table.
type Scorer struct {
	Rank         int
	PlayerID     string
	TeamID       string
	Goals        int
	PenaltyGoals int
	Assists      int
}
