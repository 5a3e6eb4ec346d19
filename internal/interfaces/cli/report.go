package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
)

type statsCalculator interface {
	MostImprovedBattingAverage(ctx context.Context, yearFrom, yearTo int) (batting.BattingAverageDifference, bool, error)
	AverageSluggingPercentage(ctx context.Context, team string, year int) (float64, error)
	TripleCrownWinner(ctx context.Context, year int) (batting.TripleCrownResult, error)
}

// Report is the runner output, in print order.
type Report struct {
	MostImproved MostImprovedEntry  `json:"most_improved"`
	Slugging     SluggingEntry      `json:"slugging"`
	TripleCrowns []TripleCrownEntry `json:"triple_crowns"`
}

type MostImprovedEntry struct {
	FromYear   int      `json:"from_year"`
	ToYear     int      `json:"to_year"`
	PlayerID   *string  `json:"player_id"`
	Difference *float64 `json:"difference"`
}

type SluggingEntry struct {
	Team    string   `json:"team"`
	Year    int      `json:"year"`
	Average *float64 `json:"average"`
	Reason  string   `json:"reason,omitempty"`
}

type TripleCrownEntry struct {
	Year    int      `json:"year"`
	Winners []string `json:"winners"`
}

type Reporter struct {
	stats  statsCalculator
	cfg    config.ReportConfig
	logger *logging.Logger
}

func NewReporter(stats statsCalculator, cfg config.ReportConfig, logger *logging.Logger) *Reporter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Reporter{stats: stats, cfg: cfg, logger: logger}
}

// Build runs every configured statistic. An empty slugging sample is reported
// in the entry; any other error aborts the report.
func (r *Reporter) Build(ctx context.Context) (Report, error) {
	ctx, span := startSpan(ctx, "cli.Reporter.Build")
	defer span.End()

	var report Report

	improved, found, err := r.stats.MostImprovedBattingAverage(ctx, r.cfg.ImprovedFromYear, r.cfg.ImprovedToYear)
	if err != nil {
		return Report{}, fmt.Errorf("most improved batting average: %w", err)
	}
	report.MostImproved = MostImprovedEntry{FromYear: r.cfg.ImprovedFromYear, ToYear: r.cfg.ImprovedToYear}
	if found {
		report.MostImproved.PlayerID = &improved.PlayerID
		report.MostImproved.Difference = &improved.Difference
	}

	report.Slugging = SluggingEntry{Team: r.cfg.SluggingTeam, Year: r.cfg.SluggingYear}
	slg, err := r.stats.AverageSluggingPercentage(ctx, r.cfg.SluggingTeam, r.cfg.SluggingYear)
	switch {
	case errors.Is(err, usecase.ErrEmptyResultSet):
		r.logger.WarnContext(ctx, "no slugging data", "team", r.cfg.SluggingTeam, "year", r.cfg.SluggingYear, "error", err)
		report.Slugging.Reason = Reason(err)
	case err != nil:
		return Report{}, fmt.Errorf("average slugging percentage: %w", err)
	default:
		report.Slugging.Average = &slg
	}

	report.TripleCrowns = make([]TripleCrownEntry, 0, len(r.cfg.CrownYears))
	for _, year := range r.cfg.CrownYears {
		result, err := r.stats.TripleCrownWinner(ctx, year)
		if err != nil {
			return Report{}, fmt.Errorf("triple crown winner %d: %w", year, err)
		}
		report.TripleCrowns = append(report.TripleCrowns, TripleCrownEntry{Year: year, Winners: result.Winners()})
	}

	return report, nil
}
