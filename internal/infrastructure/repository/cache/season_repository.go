package cache

import (
	"context"
	"fmt"

	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	basecache "github.com/riskibarqy/baseball-stats/internal/platform/cache"
)

const seasonsKey = "batting:seasons:all"

// SeasonRepository loads every season from next on first use and serves the
// cached collection afterwards.
type SeasonRepository struct {
	next  batting.Source
	cache *basecache.Store
}

func NewSeasonRepository(next batting.Source, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) LoadAll(ctx context.Context) ([]batting.PlayerSeason, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonsKey, func(ctx context.Context) (any, error) {
		items, err := r.next.ListSeasons(ctx)
		if err != nil {
			return nil, fmt.Errorf("list seasons: %w", err)
		}
		return append([]batting.PlayerSeason(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]batting.PlayerSeason)
	return append([]batting.PlayerSeason(nil), items...), nil
}
