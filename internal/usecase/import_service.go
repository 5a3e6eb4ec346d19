package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// ImportResult summarises one import run.
type ImportResult struct {
	Read     int   `json:"read"`
	Inserted int64 `json:"inserted"`
	Skipped  int64 `json:"skipped"`
}

// ImportService copies player seasons from a source into persistent storage.
type ImportService struct {
	source batting.Source
	writer batting.Writer
	logger *logging.Logger
}

func NewImportService(source batting.Source, writer batting.Writer, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		source: source,
		writer: writer,
		logger: logger,
	}
}

func (s *ImportService) Import(ctx context.Context, batchSize int) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	if batchSize <= 0 {
		return ImportResult{}, fmt.Errorf("%w: batch size must be greater than zero", ErrInvalidInput)
	}

	seasons, err := s.source.ListSeasons(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: read player seasons: %w", ErrDependencyUnavailable, err)
	}
	span.SetAttributes(attribute.Int("seasons", len(seasons)))

	if len(seasons) == 0 {
		s.logger.WarnContext(ctx, "import source is empty")
		return ImportResult{}, nil
	}
	for _, season := range seasons {
		if err := season.Validate(); err != nil {
			return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	inserted, err := s.writer.InsertSeasons(ctx, seasons, batchSize)
	if err != nil {
		return ImportResult{}, fmt.Errorf("insert player seasons: %w", err)
	}

	result := ImportResult{
		Read:     len(seasons),
		Inserted: inserted,
		Skipped:  int64(len(seasons)) - inserted,
	}
	s.logger.InfoContext(ctx, "player seasons imported",
		"read", result.Read,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
	return result, nil
}
