package batting

import (
	"fmt"
	"strconv"
	"strings"
)

// Source column names, lower-cased.
const (
	ColumnPlayerID = "playerid"
	ColumnAtBats   = "ab"
	ColumnHits     = "h"
	ColumnDoubles  = "2b"
	ColumnTriples  = "3b"
	ColumnHomeRuns = "hr"
	ColumnRBI      = "rbi"
	ColumnLeague   = "league"
	ColumnTeam     = "teamid"
	ColumnYear     = "yearid"
)

// FromRow maps a raw source row keyed by column name to a PlayerSeason.
// Missing or empty cells become absent values; other columns are ignored.
func FromRow(row map[string]string) (PlayerSeason, error) {
	playerID := cell(row, ColumnPlayerID)
	if playerID == "" {
		return PlayerSeason{}, fmt.Errorf("%w: %s is required", ErrInvalidRow, ColumnPlayerID)
	}

	year, err := optionalInt(row, ColumnYear)
	if err != nil {
		return PlayerSeason{}, err
	}
	if year == nil {
		return PlayerSeason{}, fmt.Errorf("%w: %s is required for player %s", ErrInvalidRow, ColumnYear, playerID)
	}

	season := PlayerSeason{
		PlayerID: playerID,
		Year:     *year,
		Team:     cell(row, ColumnTeam),
		League:   cell(row, ColumnLeague),
	}

	counts := []struct {
		column string
		dst    **int
	}{
		{ColumnAtBats, &season.AtBats},
		{ColumnHits, &season.Hits},
		{ColumnDoubles, &season.Doubles},
		{ColumnTriples, &season.Triples},
		{ColumnHomeRuns, &season.HomeRuns},
		{ColumnRBI, &season.RBI},
	}
	for _, c := range counts {
		v, err := optionalInt(row, c.column)
		if err != nil {
			return PlayerSeason{}, fmt.Errorf("%w (player %s)", err, playerID)
		}
		*c.dst = v
	}

	return season, nil
}

func cell(row map[string]string, column string) string {
	return strings.TrimSpace(row[column])
}

func optionalInt(row map[string]string, column string) (*int, error) {
	raw := cell(row, column)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidRow, column, raw)
	}
	return &v, nil
}
