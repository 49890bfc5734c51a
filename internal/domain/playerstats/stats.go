package playerstats

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
)

// SeasonStats is the season tally of one player. Goals include penalty
// goals. Appearances counts the distinct matches the player has an incident
// in.
type SeasonStats struct {
	PlayerID     string
	TeamID       string
	Appearances  int
	Goals        int
	PenaltyGoals int
	OwnGoals     int
	Assists      int
	YellowCards  int
	RedCards     int
}

// Compute tallies incidents per player id.
//
// When finished is non-nil only incidents of those match ids count. Unknown
// kinds and incidents without a player are returned as diagnostics wrapping
// topscorers.ErrInvalidIncident.
func Compute(incidents []topscorers.Incident, finished map[int64]struct{}) (map[string]SeasonStats, []error) {
	var diagnostics []error
	out := make(map[string]SeasonStats)
	seen := make(map[string]map[int64]struct{})

	for i, inc := range incidents {
		if finished != nil {
			if _, ok := finished[inc.MatchID]; !ok {
				continue
			}
		}

		switch inc.Kind {
		case topscorers.KindGoal, topscorers.KindPenaltyGoal, topscorers.KindOwnGoal, topscorers.KindAssist,
			topscorers.KindYellowCard, topscorers.KindRedCard, topscorers.KindSubstitution:
		default:
			diagnostics = append(diagnostics, crerr.Wrapf(topscorers.ErrInvalidIncident, "incident %d of match %d: unknown kind %q", i, inc.MatchID, inc.Kind))
			continue
		}

		playerID := strings.TrimSpace(inc.PlayerID)
		if playerID == "" {
			diagnostics = append(diagnostics, crerr.Wrapf(topscorers.ErrInvalidIncident, "incident %d of match %d: %s without player", i, inc.MatchID, inc.Kind))
			continue
		}

		row := out[playerID]
		row.PlayerID = playerID
		if row.TeamID == "" {
			row.TeamID = inc.TeamID
		}
		if seen[playerID] == nil {
			seen[playerID] = make(map[int64]struct{})
		}
		if _, ok := seen[playerID][inc.MatchID]; !ok {
			seen[playerID][inc.MatchID] = struct{}{}
			row.Appearances++
		}

		switch inc.Kind {
		case topscorers.KindGoal:
			row.Goals++
		case topscorers.KindPenaltyGoal:
			row.Goals++
			row.PenaltyGoals++
		case topscorers.KindOwnGoal:
			row.OwnGoals++
		case topscorers.KindAssist:
			row.Assists++
		case topscorers.KindYellowCard:
			row.YellowCards++
		case topscorers.KindRedCard:
			row.RedCards++
		}
		out[playerID] = row
	}

	return out, diagnostics
}
