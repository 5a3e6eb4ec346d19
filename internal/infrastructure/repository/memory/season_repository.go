package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
)

// SeasonRepository holds player seasons in memory. It serves both as a
// batting.Source and, for tests, directly as a batting.Repository.
type SeasonRepository struct {
	mu      sync.RWMutex
	seasons []batting.PlayerSeason
}

func NewSeasonRepository(seasons []batting.PlayerSeason) *SeasonRepository {
	return &SeasonRepository{
		seasons: append([]batting.PlayerSeason(nil), seasons...),
	}
}

func (r *SeasonRepository) ListSeasons(_ context.Context) ([]batting.PlayerSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]batting.PlayerSeason, 0, len(r.seasons))
	out = append(out, r.seasons...)

	return out, nil
}

func (r *SeasonRepository) LoadAll(ctx context.Context) ([]batting.PlayerSeason, error) {
	return r.ListSeasons(ctx)
}

// InsertSeasons appends seasons not already held for the same player, year
// and team, matching the Postgres uniqueness rule.
func (r *SeasonRepository) InsertSeasons(_ context.Context, seasons []batting.PlayerSeason, _ int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[seasonKey]struct{}, len(r.seasons)+len(seasons))
	for _, s := range r.seasons {
		seen[keyOf(s)] = struct{}{}
	}

	var inserted int64
	for _, s := range seasons {
		key := keyOf(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		r.seasons = append(r.seasons, s)
		inserted++
	}
	return inserted, nil
}

type seasonKey struct {
	playerID string
	year     int
	team     string
}

func keyOf(s batting.PlayerSeason) seasonKey {
	return seasonKey{playerID: s.PlayerID, year: s.Year, team: s.Team}
}
