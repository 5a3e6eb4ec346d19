package batting

import "context"

// Source reads every player season from the underlying dataset.
type Source interface {
	ListSeasons(ctx context.Context) ([]PlayerSeason, error)
}

// Writer persists player seasons, skipping ones already stored.
type Writer interface {
	InsertSeasons(ctx context.Context, seasons []PlayerSeason, batchSize int) (int64, error)
}

// Repository exposes the loaded player seasons to use cases.
type Repository interface {
	LoadAll(ctx context.Context) ([]PlayerSeason, error)
}

// Find returns the first season in seasons belonging to playerID.
func Find(playerID string, seasons []PlayerSeason) (PlayerSeason, bool) {
	for _, s := range seasons {
		if s.PlayerID == playerID {
			return s, true
		}
	}
	return PlayerSeason{}, false
}
