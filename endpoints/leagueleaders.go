package endpoints

import "fastbreak/records"

// LeagueLeaders ranks players by a statistical category.
type LeagueLeaders struct {
	leagueID     string
	season       string
	seasonType   string
	perMode      string
	statCategory string
	scope        string
	activeFlag   string
}

// LeagueLeadersOption configures a LeagueLeaders request.
type LeagueLeadersOption func(*LeagueLeaders)

// LeadersSeasonType selects "Regular Season", "Playoffs", etc.
func LeadersSeasonType(t string) LeagueLeadersOption {
	return func(e *LeagueLeaders) { e.seasonType = t }
}

// LeadersPerMode selects the aggregation mode ("PerGame", "Totals", ...).
func LeadersPerMode(m string) LeagueLeadersOption {
	return func(e *LeagueLeaders) { e.perMode = m }
}

// LeadersStatCategory ranks by the given stat ("PTS", "REB", "AST", ...).
func LeadersStatCategory(s string) LeagueLeadersOption {
	return func(e *LeagueLeaders) { e.statCategory = s }
}

// LeadersScope restricts the player pool ("S" all, "RS" rookies).
func LeadersScope(s string) LeagueLeadersOption {
	return func(e *LeagueLeaders) { e.scope = s }
}

// LeadersActiveOnly filters to active players ("Y"/"N").
func LeadersActiveOnly(flag string) LeagueLeadersOption {
	return func(e *LeagueLeaders) { e.activeFlag = flag }
}

// NewLeagueLeaders builds a leagueleaders request for a season (YYYY-YY).
func NewLeagueLeaders(season string, opts ...LeagueLeadersOption) LeagueLeaders {
	e := LeagueLeaders{
		leagueID:     LeagueNBA,
		season:       season,
		seasonType:   SeasonTypeRegular,
		perMode:      PerModePerGame,
		statCategory: "PTS",
		scope:        "S",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (LeagueLeaders) Path() string { return "leagueleaders" }

func (e LeagueLeaders) Params() map[string]string {
	params := map[string]string{
		"LeagueID":     e.leagueID,
		"Season":       e.season,
		"SeasonType":   e.seasonType,
		"PerMode":      e.perMode,
		"StatCategory": e.statCategory,
		"Scope":        e.scope,
	}
	// Unlike the date filters on leaguegamelog, ActiveFlag is a true
	// optional: the key is omitted when unset.
	if e.activeFlag != "" {
		params["ActiveFlag"] = e.activeFlag
	}
	return params
}

// LeagueLeader is one ranked row of the LeagueLeaders table.
type LeagueLeader struct {
	PlayerID    *float64
	Rank        *float64
	PlayerName  *string
	TeamID      *float64
	Team        *string
	GamesPlayed *float64
	Minutes     *float64
	Points      *float64
	Rebounds    *float64
	Assists     *float64
	Steals      *float64
	Blocks      *float64
	Efficiency  *float64
}

func (e LeagueLeaders) Decode(body []byte) ([]LeagueLeader, error) {
	// This endpoint is one of the few that responds with the singular
	// "resultSet" object instead of a "resultSets" array.
	rows, err := records.ParseSingleTable(body)
	if err != nil {
		return nil, err
	}
	leaders := make([]LeagueLeader, len(rows))
	for i, r := range rows {
		leaders[i] = LeagueLeader{
			PlayerID:    records.Value[float64](r, "PLAYER_ID"),
			Rank:        records.Value[float64](r, "RANK"),
			PlayerName:  records.Value[string](r, "PLAYER"),
			TeamID:      records.Value[float64](r, "TEAM_ID"),
			Team:        records.Value[string](r, "TEAM"),
			GamesPlayed: records.Value[float64](r, "GP"),
			Minutes:     records.Value[float64](r, "MIN"),
			Points:      records.Value[float64](r, "PTS"),
			Rebounds:    records.Value[float64](r, "REB"),
			Assists:     records.Value[float64](r, "AST"),
			Steals:      records.Value[float64](r, "STL"),
			Blocks:      records.Value[float64](r, "BLK"),
			Efficiency:  records.Value[float64](r, "EFF"),
		}
	}
	return leaders, nil
}
