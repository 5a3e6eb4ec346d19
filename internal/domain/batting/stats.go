package batting

import (
	"math"
	"strings"
)

// BattingAverageDifference is the change in a player's batting average between two seasons.
type BattingAverageDifference struct {
	PlayerID   string  `json:"player_id"`
	Difference float64 `json:"difference"`
}

// TripleCrownResult is either "no winner" or the list of league winners for a season.
type TripleCrownResult struct {
	winners []string
}

func NoTripleCrownWinner() TripleCrownResult {
	return TripleCrownResult{}
}

// TripleCrownWinners builds a result from winner ids; no ids means no winner.
func TripleCrownWinners(playerIDs ...string) TripleCrownResult {
	if len(playerIDs) == 0 {
		return NoTripleCrownWinner()
	}
	return TripleCrownResult{winners: append([]string(nil), playerIDs...)}
}

func (r TripleCrownResult) NoWinner() bool {
	return len(r.winners) == 0
}

func (r TripleCrownResult) Winners() []string {
	return append([]string(nil), r.winners...)
}

func (r TripleCrownResult) String() string {
	if r.NoWinner() {
		return NoWinnerLabel
	}
	return strings.Join(r.winners, ", ")
}

func ByYear(seasons []PlayerSeason, year int) []PlayerSeason {
	return filter(seasons, func(s PlayerSeason) bool { return s.PlayedInYear(year) })
}

func ByTeam(seasons []PlayerSeason, team string) []PlayerSeason {
	return filter(seasons, func(s PlayerSeason) bool { return s.PlayedOnTeam(team) })
}

func ByLeague(seasons []PlayerSeason, league string) []PlayerSeason {
	return filter(seasons, func(s PlayerSeason) bool { return s.PlayedInLeague(league) })
}

func EligibleForTripleCrown(seasons []PlayerSeason) []PlayerSeason {
	return filter(seasons, PlayerSeason.EligibleForTripleCrown)
}

func filter(seasons []PlayerSeason, keep func(PlayerSeason) bool) []PlayerSeason {
	out := make([]PlayerSeason, 0, len(seasons))
	for _, s := range seasons {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// PlayedBothYears returns the player ids present in both collections, in the
// order they first appear in from.
func PlayedBothYears(from, to []PlayerSeason) []string {
	inTo := make(map[string]struct{}, len(to))
	for _, s := range to {
		inTo[s.PlayerID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(from))
	out := make([]string, 0)
	for _, s := range from {
		if _, ok := seen[s.PlayerID]; ok {
			continue
		}
		seen[s.PlayerID] = struct{}{}
		if _, ok := inTo[s.PlayerID]; ok {
			out = append(out, s.PlayerID)
		}
	}
	return out
}

// Leagues returns the distinct leagues in order of first appearance.
func Leagues(seasons []PlayerSeason) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range seasons {
		if _, ok := seen[s.League]; ok {
			continue
		}
		seen[s.League] = struct{}{}
		out = append(out, s.League)
	}
	return out
}

func HighestBattingAverage(seasons []PlayerSeason) (string, bool) {
	return leader(seasons, PlayerSeason.BattingAverage)
}

func MostHomeRuns(seasons []PlayerSeason) (string, bool) {
	return leader(seasons, func(s PlayerSeason) (float64, bool) { return count(s.HomeRuns) })
}

func MostRBI(seasons []PlayerSeason) (string, bool) {
	return leader(seasons, func(s PlayerSeason) (float64, bool) { return count(s.RBI) })
}

// TripleCrownLeagueWinner returns the player leading the league in batting
// average, home runs and RBI, if one player leads all three.
func TripleCrownLeagueWinner(seasons []PlayerSeason, league string) (string, bool) {
	leagueSeasons := ByLeague(seasons, league)

	battingLeader, ok := HighestBattingAverage(leagueSeasons)
	if !ok {
		return "", false
	}
	homeRunLeader, ok := MostHomeRuns(leagueSeasons)
	if !ok || homeRunLeader != battingLeader {
		return "", false
	}
	rbiLeader, ok := MostRBI(leagueSeasons)
	if !ok || rbiLeader != battingLeader {
		return "", false
	}
	return battingLeader, true
}

// leader picks the player with the highest metric. Seasons without the metric
// are skipped; among equal maxima the last one wins.
func leader(seasons []PlayerSeason, metric func(PlayerSeason) (float64, bool)) (string, bool) {
	var (
		bestID    string
		bestValue float64
		found     bool
	)
	for _, s := range seasons {
		v, ok := metric(s)
		if !ok {
			continue
		}
		if !found || v >= bestValue {
			bestID, bestValue, found = s.PlayerID, v, true
		}
	}
	return bestID, found
}

func count(v *int) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}

// Round3 rounds half away from zero to three decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// EligibleForMostImproved reports whether both seasons have enough at-bats to
// compare batting averages.
func EligibleForMostImproved(from, to PlayerSeason) bool {
	return from.AtBats != nil && *from.AtBats >= MostImprovedMinAtBats &&
		to.AtBats != nil && *to.AtBats >= MostImprovedMinAtBats
}
