package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/tornea-league/internal/domain/topscorers"
)

type IncidentRepository struct {
	mu                sync.RWMutex
	incidentsByLeague map[string][]topscorers.Incident
}

func NewIncidentRepository(incidentsByLeague map[string][]topscorers.Incident) *IncidentRepository {
	copied := make(map[string][]topscorers.Incident, len(incidentsByLeague))
	for leagueID, items := range incidentsByLeague {
		copied[leagueID] = append([]topscorers.Incident(nil), items...)
	}

	return &IncidentRepository{incidentsByLeague: copied}
}

func (r *IncidentRepository) ListIncidentsByLeague(_ context.Context, leagueID string) ([]topscorers.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.incidentsByLeague[leagueID]
	out := make([]topscorers.Incident, 0, len(items))
	out = append(out, items...)
	return out, nil
}
