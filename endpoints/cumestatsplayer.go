package endpoints

import (
	"strconv"
	"strings"

	"fastbreak/records"
)

// CumeStatsPlayer fetches one player's cumulative stats over an explicit
// set of games.
type CumeStatsPlayer struct {
	leagueID   string
	season     string
	seasonType string
	playerID   int
	gameIDs    []string
}

// CumeStatsPlayerOption configures a CumeStatsPlayer request.
type CumeStatsPlayerOption func(*CumeStatsPlayer)

// CumeStatsSeasonType selects "Regular Season", "Playoffs", etc.
func CumeStatsSeasonType(t string) CumeStatsPlayerOption {
	return func(e *CumeStatsPlayer) { e.seasonType = t }
}

// NewCumeStatsPlayer builds a cumestatsplayer request. gameIDs is copied, so
// the caller's slice stays free to mutate.
func NewCumeStatsPlayer(playerID int, season string, gameIDs []string, opts ...CumeStatsPlayerOption) CumeStatsPlayer {
	e := CumeStatsPlayer{
		leagueID:   LeagueNBA,
		season:     season,
		seasonType: SeasonTypeRegular,
		playerID:   playerID,
		gameIDs:    append([]string(nil), gameIDs...),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (CumeStatsPlayer) Path() string { return "cumestatsplayer" }

func (e CumeStatsPlayer) Params() map[string]string {
	return map[string]string{
		"LeagueID":   e.leagueID,
		"Season":     e.season,
		"SeasonType": e.seasonType,
		"PlayerID":   strconv.Itoa(e.playerID),
		// Game IDs travel as one pipe-delimited value, not repeated keys.
		"GameIDs": strings.Join(e.gameIDs, "|"),
	}
}

// PlayerCumeStats is the decoded cumestatsplayer response: the per-game rows
// plus the aggregate totals row. Totals is nil when the game set is empty.
type PlayerCumeStats struct {
	GameByGame []records.Record
	Totals     records.Record
}

func (e CumeStatsPlayer) Decode(body []byte) (PlayerCumeStats, error) {
	tables, err := records.ParseNamedTables(body, []records.TableSpec{
		{Field: "games", Table: "GameByGameStats"},
		{Field: "totals", Table: "TotalPlayerStats", Single: true},
	}, false)
	if err != nil {
		return PlayerCumeStats{}, err
	}
	out := PlayerCumeStats{GameByGame: tables["games"]}
	if rows := tables["totals"]; len(rows) > 0 {
		out.Totals = rows[0]
	}
	return out, nil
}
