package batting

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	TripleCrownMinAtBats  = 400
	MostImprovedMinAtBats = 200
	NoWinnerLabel         = "(No winner)"
)

// PlayerSeason is one batting line for a player in a season, team and league.
// Counting stats are nil when the source did not report them.
type PlayerSeason struct {
	PlayerID string `validate:"required"`
	Year     int    `validate:"required"`
	Team     string
	League   string
	AtBats   *int `validate:"omitempty,gte=0"`
	Hits     *int `validate:"omitempty,gte=0"`
	Doubles  *int `validate:"omitempty,gte=0"`
	Triples  *int `validate:"omitempty,gte=0"`
	HomeRuns *int `validate:"omitempty,gte=0"`
	RBI      *int `validate:"omitempty,gte=0"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func seasonValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func (s PlayerSeason) Validate() error {
	if err := seasonValidator().Struct(s); err != nil {
		return fmt.Errorf("%w: %s/%d: %v", ErrInvalidSeason, s.PlayerID, s.Year, err)
	}
	return nil
}

// SluggingPercentage returns total bases per at-bat.
func (s PlayerSeason) SluggingPercentage() (float64, bool) {
	if s.Hits == nil || s.Doubles == nil || s.Triples == nil || s.HomeRuns == nil || s.AtBats == nil || *s.AtBats == 0 {
		return 0, false
	}

	hits, doubles, triples, homeRuns := *s.Hits, *s.Doubles, *s.Triples, *s.HomeRuns
	singles := hits - doubles - triples - homeRuns
	totalBases := singles + 2*doubles + 3*triples + 4*homeRuns
	return float64(totalBases) / float64(*s.AtBats), true
}

func (s PlayerSeason) BattingAverage() (float64, bool) {
	if s.Hits == nil || s.AtBats == nil || *s.AtBats == 0 {
		return 0, false
	}
	return float64(*s.Hits) / float64(*s.AtBats), true
}

func (s PlayerSeason) EligibleForTripleCrown() bool {
	return s.AtBats != nil && *s.AtBats >= TripleCrownMinAtBats
}

func (s PlayerSeason) PlayedInYear(year int) bool {
	return s.Year == year
}

func (s PlayerSeason) PlayedOnTeam(team string) bool {
	return s.Team == team
}

func (s PlayerSeason) PlayedInLeague(league string) bool {
	return s.League == league
}

// Int returns a pointer to v, for building seasons in code.
func Int(v int) *int {
	return &v
}
