package endpoints

import (
	"strconv"

	"fastbreak/records"
)

// LeagueGameLog browses game logs across the whole league, sorted by a
// chosen stat. With playerOrTeam "T" the log has one row per team per game.
type LeagueGameLog struct {
	leagueID     string
	season       string
	seasonType   string
	playerOrTeam string
	counter      int
	sorter       string
	direction    string
	dateFrom     string
	dateTo       string
}

// LeagueGameLogOption configures a LeagueGameLog request.
type LeagueGameLogOption func(*LeagueGameLog)

// GameLogSeasonType selects "Regular Season", "Playoffs", etc.
func GameLogSeasonType(t string) LeagueGameLogOption {
	return func(e *LeagueGameLog) { e.seasonType = t }
}

// GameLogPlayerOrTeam selects "P" for player rows or "T" for team rows.
func GameLogPlayerOrTeam(v string) LeagueGameLogOption {
	return func(e *LeagueGameLog) { e.playerOrTeam = v }
}

// GameLogDateRange filters games to [from, to], both MM/DD/YYYY. Either
// side may be empty.
func GameLogDateRange(from, to string) LeagueGameLogOption {
	return func(e *LeagueGameLog) {
		e.dateFrom = from
		e.dateTo = to
	}
}

// GameLogSort sets the sort column and direction ("ASC"/"DESC").
func GameLogSort(sorter, direction string) LeagueGameLogOption {
	return func(e *LeagueGameLog) {
		e.sorter = sorter
		e.direction = direction
	}
}

// GameLogCounter caps the number of returned rows.
func GameLogCounter(n int) LeagueGameLogOption {
	return func(e *LeagueGameLog) { e.counter = n }
}

// NewLeagueGameLog builds a leaguegamelog request for a season (YYYY-YY).
func NewLeagueGameLog(season string, opts ...LeagueGameLogOption) LeagueGameLog {
	e := LeagueGameLog{
		leagueID:     LeagueNBA,
		season:       season,
		seasonType:   SeasonTypeRegular,
		playerOrTeam: "T",
		counter:      1000,
		sorter:       "PTS",
		direction:    "DESC",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (LeagueGameLog) Path() string { return "leaguegamelog" }

func (e LeagueGameLog) Params() map[string]string {
	// DateFrom and DateTo must be present even when blank; the upstream
	// rejects the request if the keys are missing entirely.
	return map[string]string{
		"LeagueID":     e.leagueID,
		"Season":       e.season,
		"SeasonType":   e.seasonType,
		"PlayerOrTeam": e.playerOrTeam,
		"Counter":      strconv.Itoa(e.counter),
		"Sorter":       e.sorter,
		"Direction":    e.direction,
		"DateFrom":     e.dateFrom,
		"DateTo":       e.dateTo,
	}
}

// GameLogEntry is one row of the LeagueGameLog table. Fields are pointers
// because the upstream nulls out columns for unplayed or partial games.
type GameLogEntry struct {
	SeasonID         *string
	TeamID           *float64
	TeamAbbreviation *string
	TeamName         *string
	GameID           *string
	GameDate         *string
	Matchup          *string
	WinLoss          *string
	Minutes          *float64
	FieldGoalsMade   *float64
	FieldGoalsAtt    *float64
	FieldGoalPct     *float64
	ThreesMade       *float64
	ThreesAtt        *float64
	ThreePct         *float64
	FreeThrowsMade   *float64
	FreeThrowsAtt    *float64
	FreeThrowPct     *float64
	OffRebounds      *float64
	DefRebounds      *float64
	Rebounds         *float64
	Assists          *float64
	Steals           *float64
	Blocks           *float64
	Turnovers        *float64
	PersonalFouls    *float64
	Points           *float64
	PlusMinus        *float64
	VideoAvailable   *float64
}

func (e LeagueGameLog) Decode(body []byte) ([]GameLogEntry, error) {
	rows, err := records.ParseTable(body, "LeagueGameLog")
	if err != nil {
		return nil, err
	}
	entries := make([]GameLogEntry, len(rows))
	for i, r := range rows {
		entries[i] = GameLogEntry{
			SeasonID:         records.Value[string](r, "SEASON_ID"),
			TeamID:           records.Value[float64](r, "TEAM_ID"),
			TeamAbbreviation: records.Value[string](r, "TEAM_ABBREVIATION"),
			TeamName:         records.Value[string](r, "TEAM_NAME"),
			GameID:           records.Value[string](r, "GAME_ID"),
			GameDate:         records.Value[string](r, "GAME_DATE"),
			Matchup:          records.Value[string](r, "MATCHUP"),
			WinLoss:          records.Value[string](r, "WL"),
			Minutes:          records.Value[float64](r, "MIN"),
			FieldGoalsMade:   records.Value[float64](r, "FGM"),
			FieldGoalsAtt:    records.Value[float64](r, "FGA"),
			FieldGoalPct:     records.Value[float64](r, "FG_PCT"),
			ThreesMade:       records.Value[float64](r, "FG3M"),
			ThreesAtt:        records.Value[float64](r, "FG3A"),
			ThreePct:         records.Value[float64](r, "FG3_PCT"),
			FreeThrowsMade:   records.Value[float64](r, "FTM"),
			FreeThrowsAtt:    records.Value[float64](r, "FTA"),
			FreeThrowPct:     records.Value[float64](r, "FT_PCT"),
			OffRebounds:      records.Value[float64](r, "OREB"),
			DefRebounds:      records.Value[float64](r, "DREB"),
			Rebounds:         records.Value[float64](r, "REB"),
			Assists:          records.Value[float64](r, "AST"),
			Steals:           records.Value[float64](r, "STL"),
			Blocks:           records.Value[float64](r, "BLK"),
			Turnovers:        records.Value[float64](r, "TOV"),
			PersonalFouls:    records.Value[float64](r, "PF"),
			Points:           records.Value[float64](r, "PTS"),
			PlusMinus:        records.Value[float64](r, "PLUS_MINUS"),
			VideoAvailable:   records.Value[float64](r, "VIDEO_AVAILABLE"),
		}
	}
	return entries, nil
}
