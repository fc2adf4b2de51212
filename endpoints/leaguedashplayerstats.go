package endpoints

import "fastbreak/records"

// LeagueDashPlayerStats fetches the league-wide player stats dashboard. The
// upstream form has dozens of filters; the ones below must be sent with
// their neutral defaults or the request is rejected.
type LeagueDashPlayerStats struct {
	leagueID    string
	season      string
	seasonType  string
	perMode     string
	measureType string
}

// LeagueDashOption configures a LeagueDashPlayerStats request.
type LeagueDashOption func(*LeagueDashPlayerStats)

// DashSeasonType selects "Regular Season", "Playoffs", etc.
func DashSeasonType(t string) LeagueDashOption {
	return func(e *LeagueDashPlayerStats) { e.seasonType = t }
}

// DashPerMode selects the aggregation mode ("PerGame", "Totals", ...).
func DashPerMode(m string) LeagueDashOption {
	return func(e *LeagueDashPlayerStats) { e.perMode = m }
}

// DashMeasureType selects the stat family ("Base", "Advanced", ...).
func DashMeasureType(m string) LeagueDashOption {
	return func(e *LeagueDashPlayerStats) { e.measureType = m }
}

// NewLeagueDashPlayerStats builds a leaguedashplayerstats request for a
// season (YYYY-YY).
func NewLeagueDashPlayerStats(season string, opts ...LeagueDashOption) LeagueDashPlayerStats {
	e := LeagueDashPlayerStats{
		leagueID:    LeagueNBA,
		season:      season,
		seasonType:  SeasonTypeRegular,
		perMode:     PerModePerGame,
		measureType: "Base",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (LeagueDashPlayerStats) Path() string { return "leaguedashplayerstats" }

func (e LeagueDashPlayerStats) Params() map[string]string {
	return map[string]string{
		"LeagueID":       e.leagueID,
		"Season":         e.season,
		"SeasonType":     e.seasonType,
		"PerMode":        e.perMode,
		"MeasureType":    e.measureType,
		"LastNGames":     "0",
		"Month":          "0",
		"OpponentTeamID": "0",
		"PaceAdjust":     "N",
		"Period":         "0",
		"PlusMinus":      "N",
		"Rank":           "N",
	}
}

// Decode returns the dashboard rows as raw records: the column set varies
// with MeasureType, so no fixed struct fits every response.
func (e LeagueDashPlayerStats) Decode(body []byte) ([]records.Record, error) {
	return records.ParseTable(body, "LeagueDashPlayerStats")
}
