package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/tornea-league/internal/domain/fixture"
)

type ResultRepository struct {
	mu              sync.RWMutex
	resultsByLeague map[string][]fixture.Result
}

func NewResultRepository(resultsByLeague map[string][]fixture.Result) *ResultRepository {
	copied := make(map[string][]fixture.Result, len(resultsByLeague))
	for leagueID, items := range resultsByLeague {
		copied[leagueID] = append([]fixture.Result(nil), items...)
	}

	return &ResultRepository{resultsByLeague: copied}
}

func (r *ResultRepository) ListResultsByLeague(_ context.Context, leagueID string) ([]fixture.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.resultsByLeague[leagueID]
	out := make([]fixture.Result, 0, len(items))
	out = append(out, items...)
	return out, nil
}
