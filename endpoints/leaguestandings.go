package endpoints

import "fastbreak/records"

// LeagueStandings fetches the conference/division standings table.
type LeagueStandings struct {
	leagueID   string
	season     string
	seasonType string
}

// LeagueStandingsOption configures a LeagueStandings request.
type LeagueStandingsOption func(*LeagueStandings)

// StandingsSeasonType selects "Regular Season" or "Pre Season".
func StandingsSeasonType(t string) LeagueStandingsOption {
	return func(e *LeagueStandings) { e.seasonType = t }
}

// NewLeagueStandings builds a standings request for a season (YYYY-YY).
func NewLeagueStandings(season string, opts ...LeagueStandingsOption) LeagueStandings {
	e := LeagueStandings{
		leagueID:   LeagueNBA,
		season:     season,
		seasonType: SeasonTypeRegular,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (LeagueStandings) Path() string { return "leaguestandingsv3" }

func (e LeagueStandings) Params() map[string]string {
	return map[string]string{
		"LeagueID":   e.leagueID,
		"Season":     e.season,
		"SeasonType": e.seasonType,
	}
}

// TeamStanding is one row of the Standings table. The header casing below is
// the upstream's, reproduced verbatim (mixed TitleCase, SCREAMING and str
// prefixes included).
type TeamStanding struct {
	TeamID        *float64
	TeamCity      *string
	TeamName      *string
	Conference    *string
	Division      *string
	PlayoffRank   *float64
	Wins          *float64
	Losses        *float64
	WinPct        *float64
	Record        *string
	Home          *string
	Road          *string
	LastTen       *string
	CurrentStreak *float64
	StreakText    *string
}

func (e LeagueStandings) Decode(body []byte) ([]TeamStanding, error) {
	rows, err := records.ParseTable(body, "Standings")
	if err != nil {
		return nil, err
	}
	standings := make([]TeamStanding, len(rows))
	for i, r := range rows {
		standings[i] = TeamStanding{
			TeamID:        records.Value[float64](r, "TeamID"),
			TeamCity:      records.Value[string](r, "TeamCity"),
			TeamName:      records.Value[string](r, "TeamName"),
			Conference:    records.Value[string](r, "Conference"),
			Division:      records.Value[string](r, "Division"),
			PlayoffRank:   records.Value[float64](r, "PlayoffRank"),
			Wins:          records.Value[float64](r, "WINS"),
			Losses:        records.Value[float64](r, "LOSSES"),
			WinPct:        records.Value[float64](r, "WinPCT"),
			Record:        records.Value[string](r, "Record"),
			Home:          records.Value[string](r, "HOME"),
			Road:          records.Value[string](r, "ROAD"),
			LastTen:       records.Value[string](r, "L10"),
			CurrentStreak: records.Value[float64](r, "CurrentStreak"),
			StreakText:    records.Value[string](r, "strCurrentStreak"),
		}
	}
	return standings, nil
}
