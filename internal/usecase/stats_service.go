package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// StatsService computes league statistics over the loaded player seasons.
// It never mutates the seasons it reads.
type StatsService struct {
	seasonRepo batting.Repository
	logger     *logging.Logger
}

func NewStatsService(seasonRepo batting.Repository, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		seasonRepo: seasonRepo,
		logger:     logger,
	}
}

// AverageSluggingPercentage returns the mean slugging percentage of a team's
// players in a season, rounded to three decimals. Seasons without a computable
// slugging percentage are left out; if none remain ErrEmptyResultSet is returned.
func (s *StatsService) AverageSluggingPercentage(ctx context.Context, team string, year int) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AverageSluggingPercentage")
	defer span.End()
	span.SetAttributes(attribute.String("team", team), attribute.Int("year", year))

	team = strings.TrimSpace(team)
	if team == "" {
		return 0, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	seasons, err := s.loadSeasons(ctx)
	if err != nil {
		return 0, err
	}

	teamSeasons := batting.ByTeam(batting.ByYear(seasons, year), team)

	var (
		total float64
		count int
	)
	for _, season := range teamSeasons {
		slg, ok := season.SluggingPercentage()
		if !ok {
			continue
		}
		total += slg
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: no slugging percentage for team %s in %d", ErrEmptyResultSet, team, year)
	}

	s.logger.DebugContext(ctx, "average slugging percentage computed",
		"team", team,
		"year", year,
		"seasons", len(teamSeasons),
		"counted", count,
	)

	return batting.Round3(total / float64(count)), nil
}

// MostImprovedBattingAverage returns the player whose batting average rose the
// most between yearFrom and yearTo. Only players with at least 200 at-bats in
// both seasons qualify; false is returned when nobody does.
func (s *StatsService) MostImprovedBattingAverage(ctx context.Context, yearFrom, yearTo int) (batting.BattingAverageDifference, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MostImprovedBattingAverage")
	defer span.End()
	span.SetAttributes(attribute.Int("year_from", yearFrom), attribute.Int("year_to", yearTo))

	seasons, err := s.loadSeasons(ctx)
	if err != nil {
		return batting.BattingAverageDifference{}, false, err
	}

	fromSeasons := batting.ByYear(seasons, yearFrom)
	toSeasons := batting.ByYear(seasons, yearTo)

	var (
		best  batting.BattingAverageDifference
		found bool
	)
	for _, playerID := range batting.PlayedBothYears(fromSeasons, toSeasons) {
		fromRecord, _ := batting.Find(playerID, fromSeasons)
		toRecord, _ := batting.Find(playerID, toSeasons)
		if !batting.EligibleForMostImproved(fromRecord, toRecord) {
			continue
		}

		diff, err := s.BattingAverageDifferenceForPlayer(playerID, fromRecord, toRecord)
		if errors.Is(err, ErrAbsentValue) {
			s.logger.DebugContext(ctx, "skip player without batting average", "player_id", playerID, "error", err)
			continue
		}
		if err != nil {
			return batting.BattingAverageDifference{}, false, err
		}

		if !found || diff.Difference >= best.Difference {
			best, found = diff, true
		}
	}

	return best, found, nil
}

// BattingAverageDifferenceForPlayer returns to's batting average minus from's,
// rounded to three decimals.
func (s *StatsService) BattingAverageDifferenceForPlayer(playerID string, from, to batting.PlayerSeason) (batting.BattingAverageDifference, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return batting.BattingAverageDifference{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	previous, ok := from.BattingAverage()
	if !ok {
		return batting.BattingAverageDifference{}, fmt.Errorf("%w: batting average for %s in %d", ErrAbsentValue, playerID, from.Year)
	}
	latest, ok := to.BattingAverage()
	if !ok {
		return batting.BattingAverageDifference{}, fmt.Errorf("%w: batting average for %s in %d", ErrAbsentValue, playerID, to.Year)
	}

	return batting.BattingAverageDifference{
		PlayerID:   playerID,
		Difference: batting.Round3(latest - previous),
	}, nil
}

// TripleCrownWinner returns, per league, the player who led in batting
// average, home runs and RBI among seasons with at least 400 at-bats.
func (s *StatsService) TripleCrownWinner(ctx context.Context, year int) (batting.TripleCrownResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TripleCrownWinner")
	defer span.End()
	span.SetAttributes(attribute.Int("year", year))

	seasons, err := s.loadSeasons(ctx)
	if err != nil {
		return batting.TripleCrownResult{}, err
	}

	eligible := batting.EligibleForTripleCrown(batting.ByYear(seasons, year))

	winners := make([]string, 0)
	for _, league := range batting.Leagues(eligible) {
		winner, ok := batting.TripleCrownLeagueWinner(eligible, league)
		if !ok {
			continue
		}
		winners = append(winners, winner)
	}

	s.logger.DebugContext(ctx, "triple crown evaluated",
		"year", year,
		"eligible", len(eligible),
		"winners", winners,
	)

	return batting.TripleCrownWinners(winners...), nil
}

func (s *StatsService) loadSeasons(ctx context.Context) ([]batting.PlayerSeason, error) {
	seasons, err := s.seasonRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load player seasons: %w", ErrDependencyUnavailable, err)
	}
	return seasons, nil
}
