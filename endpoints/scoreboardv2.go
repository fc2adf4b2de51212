package endpoints

import "fastbreak/records"

// ScoreboardV2 fetches the legacy tabular scoreboard for one calendar date.
// Prefer ScoreboardV3 for live data; v2 survives because it carries series
// standings and last-meeting tables v3 dropped.
type ScoreboardV2 struct {
	leagueID  string
	gameDate  string
	dayOffset string
}

// NewScoreboardV2 builds a scoreboardv2 request for a date (YYYY-MM-DD).
func NewScoreboardV2(gameDate string) ScoreboardV2 {
	return ScoreboardV2{leagueID: LeagueNBA, gameDate: gameDate, dayOffset: "0"}
}

func (ScoreboardV2) Path() string { return "scoreboardv2" }

func (e ScoreboardV2) Params() map[string]string {
	return map[string]string{
		"LeagueID":  e.leagueID,
		"GameDate":  e.gameDate,
		"DayOffset": e.dayOffset,
	}
}

// DayScoreboard is the decoded scoreboardv2 response. The upstream omits
// some tables entirely on days with no games, so every field may be empty
// but none is ever nil.
type DayScoreboard struct {
	GameHeaders     []records.Record
	LineScores      []records.Record
	SeriesStandings []records.Record
	LastMeetings    []records.Record
}

func (e ScoreboardV2) Decode(body []byte) (DayScoreboard, error) {
	tables, err := records.ParseNamedTables(body, []records.TableSpec{
		{Field: "headers", Table: "GameHeader"},
		{Field: "lines", Table: "LineScore"},
		{Field: "series", Table: "SeriesStandings"},
		{Field: "meetings", Table: "LastMeeting"},
	}, true)
	if err != nil {
		return DayScoreboard{}, err
	}
	return DayScoreboard{
		GameHeaders:     tables["headers"],
		LineScores:      tables["lines"],
		SeriesStandings: tables["series"],
		LastMeetings:    tables["meetings"],
	}, nil
}
