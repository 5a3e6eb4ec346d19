package memory

import "github.com/riskibarqy/baseball-stats/internal/domain/batting"

func season(playerID string, year int, league, team string, ab, h, doubles, triples, hr, rbi int) batting.PlayerSeason {
	return batting.PlayerSeason{
		PlayerID: playerID,
		Year:     year,
		League:   league,
		Team:     team,
		AtBats:   batting.Int(ab),
		Hits:     batting.Int(h),
		Doubles:  batting.Int(doubles),
		Triples:  batting.Int(triples),
		HomeRuns: batting.Int(hr),
		RBI:      batting.Int(rbi),
	}
}

// SeedSeasons is a small demo slice of the 2007-2012 batting data covering
// every report the runner prints.
func SeedSeasons() []batting.PlayerSeason {
	return []batting.PlayerSeason{
		season("custja01", 2007, "AL", "OAK", 395, 101, 18, 1, 26, 82),
		season("swishni01", 2007, "AL", "OAK", 539, 141, 36, 1, 22, 78),
		season("ellisma01", 2007, "AL", "OAK", 583, 161, 33, 1, 19, 76),
		{PlayerID: "brownje01", Year: 2007, League: "AL", Team: "OAK"},
		season("hamiljo03", 2009, "AL", "TEX", 336, 90, 21, 2, 10, 54),
		season("hamiljo03", 2010, "AL", "TEX", 518, 186, 40, 3, 32, 100),
		season("gonzaca01", 2009, "NL", "COL", 278, 79, 13, 2, 13, 29),
		season("gonzaca01", 2010, "NL", "COL", 587, 197, 34, 9, 34, 117),
		season("kempma01", 2011, "NL", "LAN", 602, 195, 33, 4, 39, 126),
		season("reyesjo01", 2011, "NL", "NYN", 537, 181, 31, 16, 7, 44),
		season("cabremi01", 2011, "AL", "DET", 572, 197, 48, 0, 30, 105),
		season("bautijo02", 2011, "AL", "TOR", 513, 155, 24, 2, 43, 103),
		season("grandcu01", 2011, "AL", "NYA", 583, 153, 26, 10, 41, 119),
		season("cabremi01", 2012, "AL", "DET", 622, 205, 40, 0, 44, 139),
		season("troutmi01", 2012, "AL", "LAA", 559, 182, 27, 8, 30, 83),
		season("hamiljo03", 2012, "AL", "TEX", 562, 160, 31, 2, 43, 128),
		season("poseybu01", 2012, "NL", "SFN", 530, 178, 39, 1, 24, 103),
		season("braunry02", 2012, "NL", "MIL", 598, 191, 36, 3, 41, 112),
		season("headlch01", 2012, "NL", "SDN", 604, 173, 31, 2, 31, 115),
	}
}
