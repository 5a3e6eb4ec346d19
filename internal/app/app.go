package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/baseball-stats/external/battingcsv"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	cacherepo "github.com/riskibarqy/baseball-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/baseball-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/baseball-stats/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/baseball-stats/internal/platform/cache"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
)

// Stats bundles the wired statistics service with the resources it holds.
type Stats struct {
	Service *usecase.StatsService
	closers []func() error
}

func (s *Stats) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

// NewStats builds the statistics service over the configured data source. The
// seasons are read lazily on first use and cached for the life of the process.
func NewStats(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Stats, error) {
	if logger == nil {
		logger = logging.Default()
	}

	out := &Stats{}
	source, err := newSeasonSource(ctx, cfg, logger, out)
	if err != nil {
		_ = out.Close()
		return nil, err
	}

	seasonRepo := cacherepo.NewSeasonRepository(source, basecache.NewStore(0))
	out.Service = usecase.NewStatsService(seasonRepo, logger)

	logger.Debug("stats service wired", "data_source", cfg.DataSource)
	return out, nil
}

// Importer bundles the import service with its database handle.
type Importer struct {
	Service *usecase.ImportService
	db      *sqlx.DB
}

func (i *Importer) Close() error {
	if i.db == nil {
		return nil
	}
	return i.db.Close()
}

// NewImporter wires the CSV reader to the Postgres repository.
func NewImporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Importer, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	reader := battingcsv.NewReader(cfg.BattingFile, cfg.BattingRowSeparator, logger)
	repo := postgres.NewBattingSeasonRepository(db)

	return &Importer{
		Service: usecase.NewImportService(reader, repo, logger),
		db:      db,
	}, nil
}

func newSeasonSource(ctx context.Context, cfg config.Config, logger *logging.Logger, stats *Stats) (batting.Source, error) {
	switch cfg.DataSource {
	case config.DataSourceCSV:
		return battingcsv.NewReader(cfg.BattingFile, cfg.BattingRowSeparator, logger), nil
	case config.DataSourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		stats.closers = append(stats.closers, db.Close)
		return postgres.NewBattingSeasonRepository(db), nil
	case config.DataSourceMemory:
		return memory.NewSeasonRepository(memory.SeedSeasons()), nil
	default:
		return nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}
