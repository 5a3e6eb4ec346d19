package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	qb "github.com/riskibarqy/baseball-stats/internal/platform/querybuilder"
)

const defaultInsertBatchSize = 500

var battingSeasonColumns = []string{
	"id", "player_id", "year_id", "league", "team_id",
	"ab", "h", "doubles", "triples", "hr", "rbi",
}

type BattingSeasonRepository struct {
	db *sqlx.DB
}

func NewBattingSeasonRepository(db *sqlx.DB) *BattingSeasonRepository {
	return &BattingSeasonRepository{db: db}
}

// ListSeasons returns every stored season in import order.
func (r *BattingSeasonRepository) ListSeasons(ctx context.Context) ([]batting.PlayerSeason, error) {
	query, args, err := qb.Select(battingSeasonColumns...).
		From(battingSeasonsTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select batting seasons query: %w", err)
	}

	var rows []battingSeasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select batting seasons: %w", err)
	}

	out := make([]batting.PlayerSeason, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// InsertSeasons writes seasons in batches inside one transaction. Rows that
// already exist for the same player, year and team are skipped; the returned
// count only includes new rows.
func (r *BattingSeasonRepository) InsertSeasons(ctx context.Context, seasons []batting.PlayerSeason, batchSize int) (int64, error) {
	if len(seasons) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = defaultInsertBatchSize
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx insert batting seasons: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var inserted int64
	for _, batch := range insertBatches(seasons, batchSize) {
		query, args, err := qb.InsertModels(battingSeasonsTable, batch, "ON CONFLICT (player_id, year_id, team_id) DO NOTHING")
		if err != nil {
			return 0, fmt.Errorf("build insert batting seasons query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("insert batting seasons batch size=%d: %w", len(batch), err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("read inserted batting seasons count: %w", err)
		}
		inserted += affected
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert batting seasons tx: %w", err)
	}
	return inserted, nil
}

func insertBatches(seasons []batting.PlayerSeason, size int) [][]battingSeasonInsertModel {
	out := make([][]battingSeasonInsertModel, 0, (len(seasons)+size-1)/size)
	for start := 0; start < len(seasons); start += size {
		end := min(start+size, len(seasons))
		batch := make([]battingSeasonInsertModel, 0, end-start)
		for _, season := range seasons[start:end] {
			batch = append(batch, newBattingSeasonInsertModel(season))
		}
		out = append(out, batch)
	}
	return out
}
