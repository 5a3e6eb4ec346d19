package postgres

import (
	"database/sql"

	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
)

const battingSeasonsTable = "batting_seasons"

type battingSeasonTableModel struct {
	ID       int64          `db:"id"`
	PlayerID string         `db:"player_id"`
	YearID   int            `db:"year_id"`
	League   sql.NullString `db:"league"`
	TeamID   string         `db:"team_id"`
	AB       sql.NullInt64  `db:"ab"`
	H        sql.NullInt64  `db:"h"`
	Doubles  sql.NullInt64  `db:"doubles"`
	Triples  sql.NullInt64  `db:"triples"`
	HR       sql.NullInt64  `db:"hr"`
	RBI      sql.NullInt64  `db:"rbi"`
}

type battingSeasonInsertModel struct {
	PlayerID string         `db:"player_id"`
	YearID   int            `db:"year_id"`
	League   sql.NullString `db:"league"`
	TeamID   string         `db:"team_id"`
	AB       sql.NullInt64  `db:"ab"`
	H        sql.NullInt64  `db:"h"`
	Doubles  sql.NullInt64  `db:"doubles"`
	Triples  sql.NullInt64  `db:"triples"`
	HR       sql.NullInt64  `db:"hr"`
	RBI      sql.NullInt64  `db:"rbi"`
}

func (m battingSeasonTableModel) toDomain() batting.PlayerSeason {
	return batting.PlayerSeason{
		PlayerID: m.PlayerID,
		Year:     m.YearID,
		Team:     m.TeamID,
		League:   nullStringValue(m.League),
		AtBats:   nullInt64ToIntPtr(m.AB),
		Hits:     nullInt64ToIntPtr(m.H),
		Doubles:  nullInt64ToIntPtr(m.Doubles),
		Triples:  nullInt64ToIntPtr(m.Triples),
		HomeRuns: nullInt64ToIntPtr(m.HR),
		RBI:      nullInt64ToIntPtr(m.RBI),
	}
}

func newBattingSeasonInsertModel(s batting.PlayerSeason) battingSeasonInsertModel {
	return battingSeasonInsertModel{
		PlayerID: s.PlayerID,
		YearID:   s.Year,
		League:   nullableString(s.League),
		TeamID:   s.Team,
		AB:       nullableInt(s.AtBats),
		H:        nullableInt(s.Hits),
		Doubles:  nullableInt(s.Doubles),
		Triples:  nullableInt(s.Triples),
		HR:       nullableInt(s.HomeRuns),
		RBI:      nullableInt(s.RBI),
	}
}
