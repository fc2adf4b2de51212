package endpoints

import "fastbreak/records"

// CommonAllPlayers lists every player the league has a record of, or only
// the given season's roster when currentOnly is set.
type CommonAllPlayers struct {
	leagueID    string
	season      string
	currentOnly bool
}

// CommonAllPlayersOption configures a CommonAllPlayers request.
type CommonAllPlayersOption func(*CommonAllPlayers)

// AllPlayersCurrentOnly restricts the list to players on a roster in the
// requested season.
func AllPlayersCurrentOnly() CommonAllPlayersOption {
	return func(e *CommonAllPlayers) { e.currentOnly = true }
}

// NewCommonAllPlayers builds a commonallplayers request for a season (YYYY-YY).
func NewCommonAllPlayers(season string, opts ...CommonAllPlayersOption) CommonAllPlayers {
	e := CommonAllPlayers{
		leagueID: LeagueNBA,
		season:   season,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (CommonAllPlayers) Path() string { return "commonallplayers" }

func (e CommonAllPlayers) Params() map[string]string {
	only := "0"
	if e.currentOnly {
		only = "1"
	}
	return map[string]string{
		"LeagueID":            e.leagueID,
		"Season":              e.season,
		"IsOnlyCurrentSeason": only,
	}
}

// Player is one row of the CommonAllPlayers table.
type Player struct {
	PersonID              *float64
	DisplayLastFirst      *string
	DisplayFirstLast      *string
	RosterStatus          *float64
	FromYear              *string
	ToYear                *string
	PlayerCode            *string
	PlayerSlug            *string
	TeamID                *float64
	TeamCity              *string
	TeamName              *string
	TeamAbbreviation      *string
	TeamCode              *string
	TeamSlug              *string
	GamesPlayedFlag       *string
	OtherLeagueExperience *string
}

func (e CommonAllPlayers) Decode(body []byte) ([]Player, error) {
	rows, err := records.ParseTable(body, "CommonAllPlayers")
	if err != nil {
		return nil, err
	}
	players := make([]Player, len(rows))
	for i, r := range rows {
		players[i] = Player{
			PersonID:              records.Value[float64](r, "PERSON_ID"),
			DisplayLastFirst:      records.Value[string](r, "DISPLAY_LAST_COMMA_FIRST"),
			DisplayFirstLast:      records.Value[string](r, "DISPLAY_FIRST_LAST"),
			RosterStatus:          records.Value[float64](r, "ROSTERSTATUS"),
			FromYear:              records.Value[string](r, "FROM_YEAR"),
			ToYear:                records.Value[string](r, "TO_YEAR"),
			PlayerCode:            records.Value[string](r, "PLAYERCODE"),
			PlayerSlug:            records.Value[string](r, "PLAYER_SLUG"),
			TeamID:                records.Value[float64](r, "TEAM_ID"),
			TeamCity:              records.Value[string](r, "TEAM_CITY"),
			TeamName:              records.Value[string](r, "TEAM_NAME"),
			TeamAbbreviation:      records.Value[string](r, "TEAM_ABBREVIATION"),
			TeamCode:              records.Value[string](r, "TEAM_CODE"),
			TeamSlug:              records.Value[string](r, "TEAM_SLUG"),
			GamesPlayedFlag:       records.Value[string](r, "GAMES_PLAYED_FLAG"),
			OtherLeagueExperience: records.Value[string](r, "OTHERLEAGUE_EXPERIENCE_CH"),
		}
	}
	return players, nil
}
